// Package server assembles the Fiber application: shared middleware, the
// error handler and every feature's routes.
package server

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/wichananm65/storefront-ai/internal/apperror"
	"github.com/wichananm65/storefront-ai/internal/faq"
	"github.com/wichananm65/storefront-ai/internal/health"
	"github.com/wichananm65/storefront-ai/internal/imageopt"
	"github.com/wichananm65/storefront-ai/internal/logging"
	"github.com/wichananm65/storefront-ai/internal/metrics"
	"github.com/wichananm65/storefront-ai/internal/recommend"
	"github.com/wichananm65/storefront-ai/internal/review"
	"github.com/wichananm65/storefront-ai/internal/seo"
)

type Options struct {
	CORSOrigins []string
	BodyLimitMB int
	// JWTSecret enables bearer-token auth on /api routes when non-empty.
	JWTSecret string
}

// Deps are the components built at startup. Recommender may be nil when
// the catalog could not be loaded.
type Deps struct {
	Recommender     *recommend.Recommender
	FAQ             *faq.Matcher
	Optimizer       *imageopt.Optimizer
	CatalogProducts int
}

func New(opts Options, deps Deps) *fiber.App {
	bodyLimit := opts.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 16
	}
	app := fiber.New(fiber.Config{
		AppName:      "storefront-ai",
		BodyLimit:    bodyLimit * 1024 * 1024,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: apperror.FiberHandler,
	})

	app.Use(logging.Middleware())
	app.Use(metrics.Middleware())
	app.Use(recover.New())
	setupCORS(app, opts.CORSOrigins)

	app.Get("/metrics", metrics.Handler())

	faqEntries := 0
	if deps.FAQ != nil {
		faqEntries = deps.FAQ.Len()
	}
	health.NewHandler(health.Status{
		RecommenderReady: deps.Recommender != nil,
		FAQEntries:       faqEntries,
		CatalogProducts:  deps.CatalogProducts,
	}).RegisterPublicRoutes(app)

	if opts.JWTSecret != "" {
		app.Use(jwtware.New(jwtware.Config{
			SigningKey: []byte(opts.JWTSecret),
			Filter:     isPublicPath,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid token"})
			},
		}))
	}

	recommend.NewHandler(deps.Recommender).RegisterPublicRoutes(app)
	faq.NewHandler(deps.FAQ).RegisterPublicRoutes(app)
	imageopt.NewHandler(deps.Optimizer).RegisterPublicRoutes(app)
	seo.NewHandler().RegisterPublicRoutes(app)
	review.NewHandler().RegisterPublicRoutes(app)

	return app
}

// isPublicPath reports whether a request skips auth: anything outside /api
// plus the health check.
func isPublicPath(c *fiber.Ctx) bool {
	p := c.Path()
	return !strings.HasPrefix(p, "/api/") || p == "/api/health"
}

func setupCORS(app *fiber.App, origins []string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}
