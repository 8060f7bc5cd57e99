package repository

import "github.com/jhoicas/Boutique-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	FilterByTelephone(telephone string) ([]*entity.Client, error)
}
