package logging

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestInitWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(Config{})

	Info().Str("component", "faq").Msg("ready")
	Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, `"component":"faq"`) || !strings.Contains(out, `"message":"ready"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line must be filtered at info level: %s", out)
	}
}

func TestMiddlewareResolvesErrors(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(Config{})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTeapot).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	res, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusTeapot {
		t.Fatalf("expected 418 from error handler, got %d", res.StatusCode)
	}
	if !strings.Contains(buf.String(), `"status":418`) {
		t.Fatalf("expected logged status 418, got %s", buf.String())
	}
}
