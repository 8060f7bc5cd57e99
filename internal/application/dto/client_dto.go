package dto

import "time"

// CreateClientRequest body para POST /api/v1/clients. User es opcional: si
// viene, se crea la cuenta asociada en la misma transacción que el cliente.
type CreateClientRequest struct {
	Surname   string             `json:"surname"`
	Address   string             `json:"adresse"`
	Telephone string             `json:"telephone"`
	Photo     string             `json:"photo,omitempty"`
	User      *CreateUserRequest `json:"user,omitempty"`
}

// ClientResponse representación pública de un cliente. User solo se incluye
// cuando el listado lo pide con include=user.
type ClientResponse struct {
	ID        int64         `json:"id"`
	Surname   string        `json:"surname"`
	Address   string        `json:"adresse"`
	Telephone string        `json:"telephone"`
	Photo     string        `json:"photo,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// FilterByTelephoneRequest body para POST /api/v1/clients/filter.
type FilterByTelephoneRequest struct {
	Telephone string `json:"telephone"`
}

// ClientListResponse listado de clientes.
type ClientListResponse struct {
	Total int              `json:"total"`
	Items []ClientResponse `json:"items"`
}
