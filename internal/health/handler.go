package health

import "github.com/gofiber/fiber/v2"

// Status describes which components came up at startup.
type Status struct {
	RecommenderReady bool
	FAQEntries       int
	CatalogProducts  int
}

type Handler struct {
	status Status
}

func NewHandler(status Status) *Handler {
	return &Handler{status: status}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/health", h.getHealth)
}

// getHealth always answers 200; a disabled component is reported, not failed.
func (h *Handler) getHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"services": fiber.Map{
			"recommender":     h.status.RecommenderReady,
			"faq_bot":         h.status.FAQEntries > 0,
			"image_optimizer": true,
			"seo_generator":   true,
			"review_analyzer": true,
		},
		"catalog_products": h.status.CatalogProducts,
	})
}
