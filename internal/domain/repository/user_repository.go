package repository

import "github.com/jhoicas/Boutique-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByLogin(login string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	ListByState(active bool) ([]*entity.User, error)
}
