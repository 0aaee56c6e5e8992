package faq

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/lang"
	"github.com/wichananm65/storefront-ai/internal/metrics"
)

type Handler struct {
	matcher *Matcher
}

func NewHandler(matcher *Matcher) *Handler {
	return &Handler{matcher: matcher}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/faq", h.getAnswer)
	app.Get("/api/faqs", h.listFAQs)
}

func (h *Handler) getAnswer(c *fiber.Ctx) error {
	question := strings.TrimSpace(c.Query("question"))
	if question == "" {
		return apperror.Validation("Question is required")
	}
	l, err := lang.Parse(c.Query("language"))
	if err != nil {
		return err
	}

	match, err := h.matcher.Answer(question, l)
	if match.Method != "" {
		metrics.FAQMatches.WithLabelValues(match.Method).Inc()
	}
	if apperror.Is(err, apperror.KindNotFound) {
		// a miss is a normal outcome, not a failed request
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return err
	}
	return c.JSON(match)
}

func (h *Handler) listFAQs(c *fiber.Ctx) error {
	l, err := lang.Parse(c.Query("language"))
	if err != nil {
		return err
	}
	faqs, err := h.matcher.All(l)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"faqs": faqs, "languages": h.matcher.Languages()})
}
