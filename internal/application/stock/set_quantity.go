package stock

import (
	"context"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/authz"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// SetQuantityUseCase reemplaza la cantidad de stock de un artículo por un
// valor absoluto (sin aritmética de deltas). Operación unitaria: no hay
// batch ni resultado parcial; no encontrado es un fallo terminal.
type SetQuantityUseCase struct {
	txRunner TxRunner
}

// NewSetQuantityUseCase construye el caso de uso.
func NewSetQuantityUseCase(txRunner TxRunner) *SetQuantityUseCase {
	return &SetQuantityUseCase{txRunner: txRunner}
}

// Set fija el stock del artículo id en quantity (>= 0) y devuelve la cantidad
// anterior y la nueva. Idempotente: repetir la llamada con la misma cantidad
// deja el mismo stock y responde old == new.
func (uc *SetQuantityUseCase) Set(ctx context.Context, role authz.Role, id, quantity int64) (*dto.QuantityResponse, error) {
	if !authz.CanPerform(role, authz.ActionUpdate, authz.ResourceArticle) {
		return nil, domain.ErrForbidden
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.QuantityResponse
	err := uc.txRunner.Run(ctx, func(articles repository.ArticleRepository) error {
		article, err := articles.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.ErrNotFound
		}
		oldQuantity := article.Stock
		article.Stock = quantity
		if err := articles.Save(article); err != nil {
			return err
		}
		out = &dto.QuantityResponse{
			ID:          article.ID,
			OldQuantity: oldQuantity,
			NewQuantity: article.Stock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
