package entity

import "time"

// Client representa un cliente de la boutique. UserID no nil = tiene cuenta asociada.
type Client struct {
	ID        int64
	Surname   string
	Address   string // adresse
	Telephone string
	Photo     string // ruta del archivo subido, vacío si no tiene
	UserID    *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
