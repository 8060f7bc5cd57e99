package entity

import (
	"time"

	"github.com/jhoicas/Boutique-api/internal/domain/authz"
)

// User representa un usuario del sistema (boutiquier o admin).
type User struct {
	ID           int64
	LastName     string // nom
	FirstName    string // prenom
	Login        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       authz.Role
	Active       bool // etat
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
