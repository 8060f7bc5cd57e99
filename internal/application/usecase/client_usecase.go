package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Boutique-api/internal/application/auth"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/authz"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// ClientTxRunner ejecuta una función dentro de una transacción con los
// repositorios de clientes y usuarios atados a esa tx. Necesario para crear
// cliente y cuenta asociada de forma atómica.
type ClientTxRunner interface {
	RunClient(ctx context.Context, fn func(
		clients repository.ClientRepository,
		users repository.UserRepository,
	) error) error
}

// ClientUseCase casos de uso para clientes: alta (con cuenta opcional),
// listado, consulta y filtro por teléfono.
type ClientUseCase struct {
	txRunner   ClientTxRunner
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(txRunner ClientTxRunner, clientRepo repository.ClientRepository, userRepo repository.UserRepository) *ClientUseCase {
	return &ClientUseCase{txRunner: txRunner, clientRepo: clientRepo, userRepo: userRepo}
}

// Create crea un cliente. Si in.User viene, crea también la cuenta de usuario
// (password con bcrypt, etat activo por defecto) y la liga al cliente, todo
// en una sola transacción: si algo falla no queda ni cliente ni usuario.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Surname == "" || in.Telephone == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.User != nil {
		if in.User.Login == "" || len(in.User.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		role := authz.Role(in.User.Role)
		if role != authz.RoleBoutiquier && role != authz.RoleAdmin {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	client := &entity.Client{
		Surname:   in.Surname,
		Address:   in.Address,
		Telephone: in.Telephone,
		Photo:     in.Photo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var account *entity.User
	err := uc.txRunner.RunClient(ctx, func(clients repository.ClientRepository, users repository.UserRepository) error {
		if in.User != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(in.User.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			account = &entity.User{
				LastName:     in.User.LastName,
				FirstName:    in.User.FirstName,
				Login:        in.User.Login,
				PasswordHash: string(hash),
				RoleID:       authz.Role(in.User.Role),
				Active:       true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := users.Create(account); err != nil {
				return err
			}
			client.UserID = &account.ID
		}
		return clients.Create(client)
	})
	if err != nil {
		return nil, err
	}

	out := toClientResponse(client)
	if account != nil {
		out.User = auth.ToUserResponse(account)
	}
	return out, nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (uc *ClientUseCase) GetByID(id int64) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación. Con includeUser carga también la
// cuenta asociada de cada cliente que tenga una.
func (uc *ClientUseCase) List(limit, offset int, includeUser bool) (*dto.ClientListResponse, error) {
	list, err := uc.clientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		item := *toClientResponse(c)
		if includeUser && c.UserID != nil {
			user, err := uc.userRepo.GetByID(*c.UserID)
			if err != nil {
				return nil, err
			}
			item.User = auth.ToUserResponse(user)
		}
		items = append(items, item)
	}
	return &dto.ClientListResponse{Total: len(items), Items: items}, nil
}

// FilterByTelephone busca clientes cuyo teléfono coincida (exacto o prefijo).
func (uc *ClientUseCase) FilterByTelephone(telephone string) (*dto.ClientListResponse, error) {
	if telephone == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.clientRepo.FilterByTelephone(telephone)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Total: len(items), Items: items}, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Surname:   c.Surname,
		Address:   c.Address,
		Telephone: c.Telephone,
		Photo:     c.Photo,
		CreatedAt: c.CreatedAt,
	}
}
