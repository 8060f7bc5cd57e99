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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL
// (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, surname, adresse, telephone, photo, user_id, created_at, updated_at`

// Create persiste un nuevo cliente y asigna el ID generado.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (surname, adresse, telephone, photo, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		client.Surname, client.Address, client.Telephone, client.Photo,
		client.UserID, client.CreatedAt, client.UpdatedAt,
	).Scan(&client.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Surname, &c.Address, &c.Telephone, &c.Photo, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List lista clientes con paginación.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return r.scanAll(rows)
}

// FilterByTelephone busca clientes por teléfono exacto o por prefijo.
func (r *ClientRepo) FilterByTelephone(telephone string) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE telephone LIKE $1 || '%' ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, telephone)
	if err != nil {
		return nil, fmt.Errorf("filter clients by telephone: %w", err)
	}
	return r.scanAll(rows)
}

func (r *ClientRepo) scanAll(rows pgx.Rows) ([]*entity.Client, error) {
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Surname, &c.Address, &c.Telephone, &c.Photo,
			&c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
