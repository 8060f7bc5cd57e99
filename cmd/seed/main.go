// seed puebla la base con datos de ejemplo: un admin, un boutiquier y
// algunos artículos con stock inicial.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el servidor (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Boutique-api/internal/domain/authz"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Boutique-api/pkg/config"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	articles := postgres.NewArticleRepository(pool)
	now := time.Now()

	seedUsers := []struct {
		nom, prenom, login, password string
		role                         authz.Role
	}{
		{"Diallo", "Amadou", "admin", "admin12345", authz.RoleAdmin},
		{"Ndiaye", "Fatou", "boutiquier", "boutique123", authz.RoleBoutiquier},
	}
	for _, s := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hash de password: %v\n", err)
			os.Exit(1)
		}
		u := &entity.User{
			LastName:     s.nom,
			FirstName:    s.prenom,
			Login:        s.login,
			PasswordHash: string(hash),
			RoleID:       s.role,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(u); err != nil {
			// Login duplicado: seed ya ejecutado, seguimos con el resto.
			fmt.Fprintf(os.Stderr, "Usuario %s: %v\n", s.login, err)
			continue
		}
		fmt.Printf("Usuario %s creado (id %d)\n", u.Login, u.ID)
	}

	seedArticles := []struct {
		libelle string
		prix    string
		stock   int64
	}{
		{"Savon de Marseille", "1500.00", 120},
		{"Riz parfumé 5kg", "4500.00", 40},
		{"Huile végétale 1L", "2200.00", 0},
		{"Sucre en poudre 1kg", "800.00", 75},
	}
	for _, s := range seedArticles {
		a := &entity.Article{
			Label:     s.libelle,
			Price:     decimal.RequireFromString(s.prix),
			Stock:     s.stock,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := articles.Create(a); err != nil {
			fmt.Fprintf(os.Stderr, "Artículo %s: %v\n", s.libelle, err)
			continue
		}
		fmt.Printf("Artículo %s creado (id %d, stock %d)\n", a.Label, a.ID, a.Stock)
	}
}
