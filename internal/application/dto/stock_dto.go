package dto

// StockDelta es una instrucción individual del batch de stock: sumar Quantity
// al stock actual del artículo ID. Quantity negativa se rechaza por ítem,
// nunca se resta. Cero es un no-op válido.
type StockDelta struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantite"`
}

// UpdateStockRequest body para POST /api/v1/articles/update-stock.
type UpdateStockRequest struct {
	Updates []StockDelta `json:"updates"`
}

// StockUpdateResult detalle de una instrucción aplicada con éxito.
type StockUpdateResult struct {
	ID            int64 `json:"id"`
	OldQuantity   int64 `json:"old_quantity"`
	NewQuantity   int64 `json:"new_quantity"`
	AddedQuantity int64 `json:"added_quantity"`
}

// StockUpdateFailure detalle de una instrucción fallida: la instrucción
// original más la descripción del error.
type StockUpdateFailure struct {
	Article StockDelta `json:"article"`
	Error   string     `json:"error"`
}

// StockReport resultado de una conciliación de stock. Invariante:
// len(SuccessfulUpdates) + len(FailedUpdates) == len(entrada), con el orden
// de entrada preservado dentro de cada lista. Status es ECHEC si hay al
// menos un fallo, SUCCESS si no.
type StockReport struct {
	Status            string               `json:"status"`
	SuccessfulUpdates []StockUpdateResult  `json:"successful_updates"`
	FailedUpdates     []StockUpdateFailure `json:"failed_updates"`
}

// AllOK indica si todas las instrucciones del batch se aplicaron.
func (r *StockReport) AllOK() bool {
	return len(r.FailedUpdates) == 0
}

// SetQuantityRequest body para PATCH /api/v1/articles/{id}/quantity.
type SetQuantityRequest struct {
	Quantity int64 `json:"quantite"`
}

// QuantityResponse resultado del set absoluto de cantidad.
type QuantityResponse struct {
	ID          int64 `json:"id"`
	OldQuantity int64 `json:"old_quantity"`
	NewQuantity int64 `json:"new_quantity"`
}
