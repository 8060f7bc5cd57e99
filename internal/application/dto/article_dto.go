package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateArticleRequest body para POST /api/v1/articles.
// Los nombres de campo conservan el contrato francés de la API original.
type CreateArticleRequest struct {
	Label string          `json:"libelle"`
	Price decimal.Decimal `json:"prix"`
	Stock int64           `json:"quantite_de_stock"`
}

// ArticleResponse representación pública de un artículo.
type ArticleResponse struct {
	ID        int64           `json:"id"`
	Label     string          `json:"libelle"`
	Price     decimal.Decimal `json:"prix"`
	Stock     int64           `json:"quantite_de_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ArticleListResponse listado de artículos.
type ArticleListResponse struct {
	Total int               `json:"total"`
	Items []ArticleResponse `json:"items"`
}
