package review

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/lang"
	"github.com/wichananm65/storefront-ai/internal/validation"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/analyze-reviews", h.analyze)
}

type analyzeRequest struct {
	Reviews  []Review `json:"reviews" validate:"dive"`
	Language string   `json:"language"`
}

func (h *Handler) analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body: %v", err)
	}
	if req.Reviews == nil {
		return apperror.Validation("Reviews data is required")
	}
	if err := validation.Struct(req); err != nil {
		return err
	}
	l, err := lang.Parse(req.Language)
	if err != nil {
		return err
	}

	analysis, err := Analyze(req.Reviews, l)
	if err != nil {
		return err
	}
	summary, err := Summarize(analysis, l)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"analysis": analysis, "summary": summary})
}
