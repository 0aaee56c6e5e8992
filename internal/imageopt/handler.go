package imageopt

import (
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/metrics"
)

type Handler struct {
	optimizer *Optimizer
}

func NewHandler(optimizer *Optimizer) *Handler {
	return &Handler{optimizer: optimizer}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/optimize-image", h.optimize)
	app.Get("/api/optimize-image/formats", h.formats)
}

func (h *Handler) optimize(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return apperror.Validation("No image file provided")
	}
	f, err := file.Open()
	if err != nil {
		return apperror.Internal(err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return apperror.Internal(err)
	}

	opts := Options{}
	if opts.Format, err = ParseFormat(c.FormValue("format")); err != nil {
		return err
	}
	if opts.Quality, err = formInt(c, "quality", 1, 100); err != nil {
		return err
	}
	if opts.MaxWidth, err = formInt(c, "max_width", 1, 10000); err != nil {
		return err
	}
	if opts.MaxHeight, err = formInt(c, "max_height", 1, 10000); err != nil {
		return err
	}

	res, err := h.optimizer.Optimize(c.UserContext(), data, opts)
	if err != nil {
		return err
	}
	if saved := res.BytesSaved(len(data)); saved > 0 {
		metrics.ImageBytesSaved.Add(float64(saved))
	}
	return c.JSON(res)
}

// formInt parses an optional integer form field; absent fields return 0.
func formInt(c *fiber.Ctx, name string, lo, hi int) (int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation("%s must be an integer", name)
	}
	if v < lo || v > hi {
		return 0, apperror.Validation("%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return v, nil
}

func (h *Handler) formats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"formats": Formats()})
}
