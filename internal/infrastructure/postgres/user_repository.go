package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/authz"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL
// (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, nom, prenom, login, password, role_id, etat, created_at, updated_at`

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (nom, prenom, login, password, role_id, etat, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.LastName, user.FirstName, user.Login, user.PasswordHash,
		int(user.RoleID), user.Active, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoginAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByLogin obtiene un usuario por login. (nil, nil) si no existe.
func (r *UserRepo) GetByLogin(login string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, login), "get user by login")
}

// List lista usuarios con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return r.scanAll(rows)
}

// ListByState lista usuarios filtrados por etat.
func (r *UserRepo) ListByState(active bool) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE etat = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, active)
	if err != nil {
		return nil, fmt.Errorf("list users by state: %w", err)
	}
	return r.scanAll(rows)
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var roleID int
	err := row.Scan(&u.ID, &u.LastName, &u.FirstName, &u.Login, &u.PasswordHash,
		&roleID, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.RoleID = authz.Role(roleID)
	return &u, nil
}

func (r *UserRepo) scanAll(rows pgx.Rows) ([]*entity.User, error) {
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var roleID int
		if err := rows.Scan(&u.ID, &u.LastName, &u.FirstName, &u.Login, &u.PasswordHash,
			&roleID, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.RoleID = authz.Role(roleID)
		list = append(list, &u)
	}
	return list, rows.Err()
}
