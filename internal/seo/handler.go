package seo

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/catalog"
	"github.com/wichananm65/storefront-ai/internal/lang"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/generate-seo", h.generate)
	app.Get("/api/generate-seo/options", h.options)
}

type generateRequest struct {
	Product      *catalog.Product `json:"product"`
	Language     string           `json:"language"`
	TemplateType string           `json:"template_type"`
}

func (h *Handler) generate(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body: %v", err)
	}
	if req.Product == nil {
		return apperror.Validation("Product data is required")
	}
	l, err := lang.Parse(req.Language)
	if err != nil {
		return err
	}
	typ, err := ParseTemplateType(req.TemplateType)
	if err != nil {
		return err
	}

	res, err := Generate(*req.Product, l, typ)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *Handler) options(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"languages":      lang.Supported(),
		"template_types": TemplateTypes(),
	})
}
