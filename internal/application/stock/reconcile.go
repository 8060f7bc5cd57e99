package stock

import (
	"context"
	"errors"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/authz"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// Mensajes por ítem del reporte de conciliación.
const (
	msgNegativeQuantity = "la cantidad no puede ser menor que 0"
	msgArticleNotFound  = "artículo no encontrado"
)

// ReconcileUseCase aplica un batch de deltas de stock dentro de una sola
// transacción, aislando los fallos por ítem: una instrucción inválida, un
// artículo inexistente o un error de persistencia de un ítem se registran en
// FailedUpdates y el resto del batch continúa. Cada ítem corre bajo un
// savepoint para que su error SQL no aborte la transacción externa; esta
// hace Commit aunque haya ítems fallidos. Solo un error irrecuperable
// (contexto cancelado o vencido) revierte el batch completo y descarta el
// reporte parcial.
type ReconcileUseCase struct {
	txRunner TxRunner
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner TxRunner) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner}
}

// Reconcile procesa las instrucciones en orden de entrada, sin cortocircuito:
// el resultado de cada ítem es independiente de los anteriores.
//
// Invariantes del reporte:
//   - cada instrucción de entrada aparece exactamente una vez, en
//     SuccessfulUpdates o en FailedUpdates, conservando el orden de entrada;
//   - para cada éxito, NewQuantity == OldQuantity + AddedQuantity con
//     AddedQuantity >= 0 (cero es un no-op válido).
//
// Retorna domain.ErrForbidden si el rol no puede actualizar artículos (sin
// abrir transacción) y domain.ErrInvalidInput si el batch viene vacío.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, role authz.Role, updates []dto.StockDelta) (*dto.StockReport, error) {
	if !authz.CanPerform(role, authz.ActionUpdate, authz.ResourceArticle) {
		return nil, domain.ErrForbidden
	}
	if len(updates) == 0 {
		return nil, domain.ErrInvalidInput
	}

	report := &dto.StockReport{
		SuccessfulUpdates: make([]dto.StockUpdateResult, 0, len(updates)),
		FailedUpdates:     make([]dto.StockUpdateFailure, 0),
	}

	err := uc.txRunner.RunBatch(ctx, func(tx BatchTx) error {
		for _, upd := range updates {
			if upd.Quantity < 0 {
				report.FailedUpdates = append(report.FailedUpdates, dto.StockUpdateFailure{
					Article: upd,
					Error:   msgNegativeQuantity,
				})
				continue
			}

			var result dto.StockUpdateResult
			err := tx.Step(ctx, func(articles repository.ArticleRepository) error {
				article, err := articles.GetByIDForUpdate(upd.ID)
				if err != nil {
					return err
				}
				if article == nil {
					return domain.ErrNotFound
				}
				oldQuantity := article.Stock
				article.Stock = oldQuantity + upd.Quantity
				if err := articles.Save(article); err != nil {
					return err
				}
				result = dto.StockUpdateResult{
					ID:            article.ID,
					OldQuantity:   oldQuantity,
					NewQuantity:   article.Stock,
					AddedQuantity: upd.Quantity,
				}
				return nil
			})
			if err != nil {
				if isUnrecoverable(err) {
					return err
				}
				// El savepoint del ítem ya se revirtió; la tx externa sigue viva.
				msg := err.Error()
				if errors.Is(err, domain.ErrNotFound) {
					msg = msgArticleNotFound
				}
				report.FailedUpdates = append(report.FailedUpdates, dto.StockUpdateFailure{
					Article: upd,
					Error:   msg,
				})
				continue
			}

			report.SuccessfulUpdates = append(report.SuccessfulUpdates, result)
		}
		return nil
	})
	if err != nil {
		// Rollback ya ejecutado por el TxRunner: el reporte parcial se descarta.
		return nil, err
	}

	if report.AllOK() {
		report.Status = dto.StatusSuccess
	} else {
		report.Status = dto.StatusEchec
	}
	return report, nil
}

// isUnrecoverable distingue los errores que invalidan la transacción completa
// de los fallos aislables por ítem. Un contexto cancelado o vencido deja la
// tx inutilizable: no tiene sentido seguir iterando el batch.
func isUnrecoverable(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
