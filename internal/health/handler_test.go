package health

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHealthReportsDisabledRecommender(t *testing.T) {
	app := fiber.New()
	NewHandler(Status{RecommenderReady: false, FAQEntries: 3, CatalogProducts: 0}).RegisterPublicRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("health must always be 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	want := `{"catalog_products":0,"services":{"faq_bot":true,"image_optimizer":true,"recommender":false,"review_analyzer":true,"seo_generator":true},"status":"healthy"}`
	if string(body) != want {
		t.Fatalf("unexpected body\n got: %s\nwant: %s", body, want)
	}
}
