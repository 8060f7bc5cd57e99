package dto

// CreateUserRequest datos de la cuenta anidada al crear un cliente.
type CreateUserRequest struct {
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Login     string `json:"login"`
	Password  string `json:"password"`
	Role      int    `json:"role"`
}

// UserResponse representación pública de un usuario (sin password hash).
type UserResponse struct {
	ID        int64  `json:"id"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Login     string `json:"login"`
	RoleID    int    `json:"role_id"`
	Active    bool   `json:"etat"`
}

// UsersByStateRequest body para POST /api/v1/users-by-etat.
type UsersByStateRequest struct {
	Active bool `json:"etat"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Total int            `json:"total"`
	Items []UserResponse `json:"items"`
}
