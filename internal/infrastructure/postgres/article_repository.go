package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL
// (usable con pool o tx). Las columnas conservan los nombres franceses del
// esquema original (libelle, prix, quantite_de_stock).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

const articleColumns = `id, libelle, prix, quantite_de_stock, created_at, updated_at`

// Create persiste un nuevo artículo y asigna el ID generado.
func (r *ArticleRepo) Create(article *entity.Article) error {
	query := `
		INSERT INTO articles (libelle, prix, quantite_de_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		article.Label, article.Price, article.Stock, article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. (nil, nil) si no existe o está borrado.
func (r *ArticleRepo) GetByID(id int64) (*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get article")
}

// GetByIDForUpdate obtiene el artículo y bloquea la fila (SELECT FOR UPDATE).
// Usar dentro de la transacción del conciliador para evitar condiciones de carrera.
func (r *ArticleRepo) GetByIDForUpdate(id int64) (*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles WHERE id = $1 AND deleted_at IS NULL
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get article for update")
}

// Save actualiza libelle, prix y quantite_de_stock de un artículo existente.
func (r *ArticleRepo) Save(article *entity.Article) error {
	query := `
		UPDATE articles SET libelle = $2, prix = $3, quantite_de_stock = $4, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query,
		article.ID, article.Label, article.Price, article.Stock,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByAvailability lista artículos con stock (> 0) o agotados (= 0).
func (r *ArticleRepo) ListByAvailability(available bool) ([]*entity.Article, error) {
	op := "="
	if available {
		op = ">"
	}
	query := `
		SELECT ` + articleColumns + `
		FROM articles WHERE deleted_at IS NULL AND quantite_de_stock ` + op + ` 0
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.Label, &a.Price, &a.Stock, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// SoftDelete marca el artículo como borrado (deleted_at = now()).
func (r *ArticleRepo) SoftDelete(id int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE articles SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete article: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore revierte el borrado lógico.
func (r *ArticleRepo) Restore(id int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE articles SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("restore article: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ForceDelete elimina definitivamente el artículo (borrado físico).
func (r *ArticleRepo) ForceDelete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("force delete article: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ArticleRepo) scanOne(row pgx.Row, op string) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.Label, &a.Price, &a.Stock, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
