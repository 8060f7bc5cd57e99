package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Boutique-api/internal/application/auth"
	"github.com/jhoicas/Boutique-api/internal/application/stock"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticleUC   *usecase.ArticleUseCase
	Reconciler  *stock.ReconcileUseCase
	SetQuantity *stock.SetQuantityUseCase
	ClientUC    *usecase.ClientUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	Log         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/v1", AuthMiddleware(deps.JWTSecret))
	protected.Get("/user", authHandler.Me)

	// Articles (protegido)
	articles := protected.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC, deps.Reconciler, deps.SetQuantity, deps.Log)
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.GetAvailable)
	// update-stock va antes de /:id para que Fiber no lo capture como parámetro.
	articles.Post("/update-stock", articleHandler.UpdateStock)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Patch("/:id/quantity", articleHandler.UpdateQuantity)
	articles.Delete("/:id", articleHandler.Delete)
	articles.Post("/:id/restore", articleHandler.Restore)
	articles.Delete("/:id/force", articleHandler.ForceDelete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.Log)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Post("/filter", clientHandler.FilterByTelephone)
	clients.Get("/:id", clientHandler.GetByID)

	// Users (protegido)
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	protected.Get("/users", userHandler.List)
	protected.Post("/users-by-etat", userHandler.ByEtat)
}
