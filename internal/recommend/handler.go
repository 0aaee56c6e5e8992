package recommend

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/catalog"
	"github.com/wichananm65/storefront-ai/internal/validation"
)

type Handler struct {
	recommender *Recommender
}

// NewHandler accepts a nil recommender; requests then fail with a not-ready error.
func NewHandler(r *Recommender) *Handler {
	return &Handler{recommender: r}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/recommend", h.getRecommendations)
}

type recommendQuery struct {
	ProductID string `query:"product_id" json:"product_id"`
	Limit     int    `query:"limit" json:"limit" validate:"min=1,max=50"`
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	q := recommendQuery{Limit: DefaultLimit}
	if err := c.QueryParser(&q); err != nil {
		return apperror.Validation("invalid query: %v", err)
	}
	if q.ProductID == "" {
		return apperror.Validation("Product ID is required")
	}
	if err := validation.Struct(q); err != nil {
		return err
	}
	if h.recommender == nil {
		return apperror.NotReady("Recommender not initialized")
	}

	recs := h.recommender.Recommend(catalog.ProductID(q.ProductID), q.Limit)
	return c.JSON(fiber.Map{"recommendations": recs})
}
