package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Article representa un artículo de la boutique.
// Stock solo se modifica vía el conciliador de stock o el set absoluto de cantidad;
// nunca puede quedar negativo. DeletedAt no nil = borrado lógico (restaurable).
type Article struct {
	ID        int64
	Label     string          // libelle
	Price     decimal.Decimal // prix, nunca negativo
	Stock     int64           // quantite_de_stock, nunca negativo
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Available indica si el artículo tiene stock disponible.
func (a *Article) Available() bool {
	return a.Stock > 0
}
