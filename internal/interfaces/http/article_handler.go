package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/stock"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/rs/zerolog"
)

// ArticleHandler maneja el CRUD de artículos y las operaciones de stock.
type ArticleHandler struct {
	articles    *usecase.ArticleUseCase
	reconciler  *stock.ReconcileUseCase
	setQuantity *stock.SetQuantityUseCase
	log         zerolog.Logger
}

// NewArticleHandler construye el handler de artículos.
func NewArticleHandler(articles *usecase.ArticleUseCase, reconciler *stock.ReconcileUseCase, setQuantity *stock.SetQuantityUseCase, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, reconciler: reconciler, setQuantity: setQuantity, log: log}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateArticleRequest  true  "libelle, prix, quantite_de_stock"
// @Success      201  {object}  dto.ArticleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateArticleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.articles.Create(GetRole(c), in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.articles.GetByID(GetRole(c), id)
	if err != nil {
		return h.mapError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(out)
}

// GetAvailable godoc
// @Summary      Listar artículos por disponibilidad
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        disponible  query  string  true  "oui o non"
// @Success      200  {object}  dto.ArticleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/articles [get]
func (h *ArticleHandler) GetAvailable(c *fiber.Ctx) error {
	var available bool
	switch c.Query("disponible") {
	case "oui":
		available = true
	case "non":
		available = false
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "disponible debe ser oui o non"})
	}
	out, err := h.articles.ListByAvailability(GetRole(c), available)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Conciliar stock por lotes
// @Description  Aplica deltas de stock en una sola transacción. Los ítems
// @Description  inválidos o inexistentes quedan en failed_updates; el resto
// @Description  se confirma igual.
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "instrucciones de stock"
// @Success      200  {object}  dto.StockReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/articles/update-stock [post]
func (h *ArticleHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	report, err := h.reconciler.Reconcile(c.Context(), GetRole(c), in.Updates)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acción no permitida para este rol"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "updates no puede venir vacío"})
		}
		// Error irrecuperable: la transacción completa se revirtió, sin reporte parcial.
		h.log.Error().Err(err).Msg("conciliación de stock revertida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(report)
}

// UpdateQuantity godoc
// @Summary      Fijar cantidad absoluta de stock
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del artículo"
// @Param        body  body  dto.SetQuantityRequest  true  "quantite"
// @Success      200  {object}  dto.QuantityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/articles/{id}/quantity [patch]
func (h *ArticleHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.setQuantity.Set(c.Context(), GetRole(c), id, in.Quantity)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrado lógico de artículo
// @Tags         articles
// @Security     Bearer
// @Param        id  path  int  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.articles.Delete(GetRole(c), id); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Restaurar artículo borrado (solo admin)
// @Tags         articles
// @Security     Bearer
// @Param        id  path  int  true  "ID del artículo"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/articles/{id}/restore [post]
func (h *ArticleHandler) Restore(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.articles.Restore(GetRole(c), id); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ForceDelete godoc
// @Summary      Borrado físico de artículo (solo admin)
// @Tags         articles
// @Security     Bearer
// @Param        id  path  int  true  "ID del artículo"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/articles/{id}/force [delete]
func (h *ArticleHandler) ForceDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.articles.ForceDelete(GetRole(c), id); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// mapError traduce errores de dominio a códigos HTTP.
func (h *ArticleHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acción no permitida para este rol"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "artículo duplicado"})
	default:
		h.log.Error().Err(err).Msg("error inesperado en artículos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
