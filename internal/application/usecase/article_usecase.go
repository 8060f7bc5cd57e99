package usecase

import (
	"time"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/authz"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ArticleUseCase casos de uso CRUD para artículos. El stock no se toca aquí:
// se maneja vía el conciliador de stock (paquete stock).
// Toda operación consulta la puerta de autorización antes de trabajar.
type ArticleUseCase struct {
	repo repository.ArticleRepository
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository) *ArticleUseCase {
	return &ArticleUseCase{repo: repo}
}

// Create crea un nuevo artículo. Reglas: libelle requerido (máx 255),
// prix >= 0, quantite_de_stock >= 0.
func (uc *ArticleUseCase) Create(role authz.Role, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if !authz.CanPerform(role, authz.ActionCreate, authz.ResourceArticle) {
		return nil, domain.ErrForbidden
	}
	if in.Label == "" || len(in.Label) > 255 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	article := &entity.Article{
		Label:     in.Label,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByID obtiene un artículo por ID. (nil, nil) si no existe.
func (uc *ArticleUseCase) GetByID(role authz.Role, id int64) (*dto.ArticleResponse, error) {
	if !authz.CanPerform(role, authz.ActionView, authz.ResourceArticle) {
		return nil, domain.ErrForbidden
	}
	article, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}
	return toArticleResponse(article), nil
}

// Delete hace borrado lógico del artículo (restaurable por un admin).
func (uc *ArticleUseCase) Delete(role authz.Role, id int64) error {
	if !authz.CanPerform(role, authz.ActionDelete, authz.ResourceArticle) {
		return domain.ErrForbidden
	}
	return uc.repo.SoftDelete(id)
}

// Restore revierte un borrado lógico. Solo admin.
func (uc *ArticleUseCase) Restore(role authz.Role, id int64) error {
	if !authz.CanPerform(role, authz.ActionRestore, authz.ResourceArticle) {
		return domain.ErrForbidden
	}
	return uc.repo.Restore(id)
}

// ForceDelete elimina definitivamente el artículo. Solo admin.
func (uc *ArticleUseCase) ForceDelete(role authz.Role, id int64) error {
	if !authz.CanPerform(role, authz.ActionForceDelete, authz.ResourceArticle) {
		return domain.ErrForbidden
	}
	return uc.repo.ForceDelete(id)
}

// ListByAvailability lista artículos disponibles (stock > 0) o agotados (stock == 0).
func (uc *ArticleUseCase) ListByAvailability(role authz.Role, available bool) (*dto.ArticleListResponse, error) {
	if !authz.CanPerform(role, authz.ActionViewAny, authz.ResourceArticle) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByAvailability(available)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return &dto.ArticleListResponse{Total: len(items), Items: items}, nil
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticleResponse{
		ID:        a.ID,
		Label:     a.Label,
		Price:     a.Price,
		Stock:     a.Stock,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
