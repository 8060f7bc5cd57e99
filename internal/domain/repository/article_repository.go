package repository

import "github.com/jhoicas/Boutique-api/internal/domain/entity"

// ArticleRepository define el puerto de persistencia para Article (DIP).
// GetByID y GetByIDForUpdate devuelven (nil, nil) si el artículo no existe
// o está borrado lógicamente.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id int64) (*entity.Article, error)
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usar dentro de transacciones del conciliador de stock.
	GetByIDForUpdate(id int64) (*entity.Article, error)
	Save(article *entity.Article) error
	ListByAvailability(available bool) ([]*entity.Article, error)
	SoftDelete(id int64) error
	Restore(id int64) error
	ForceDelete(id int64) error
}
