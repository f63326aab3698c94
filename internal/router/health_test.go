package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/samm329-ui/ProjectAtithi/internal/cart"
	"github.com/samm329-ui/ProjectAtithi/internal/catalog"
	"github.com/samm329-ui/ProjectAtithi/internal/order"
	"github.com/samm329-ui/ProjectAtithi/internal/recommend"
	"github.com/samm329-ui/ProjectAtithi/internal/reviews"
	"github.com/samm329-ui/ProjectAtithi/internal/search"
)

type stubModelClient struct{}

func (stubModelClient) Generate(ctx context.Context, prompt string) (string, error) {
	return `{"dishName": "Butter Chicken", "reason": "ok"}`, nil
}

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	menu := catalog.NewService(catalog.NewInMemoryRepository(catalog.MenuData()))
	carts := cart.NewService(cart.NewInMemoryRepository(), menu)
	formatter := order.NewFormatter("Atithi", "8250104315", "918250104315")

	return New(Handlers{
		Catalog:   catalog.NewHandler(menu),
		Search:    search.NewHandler(menu),
		Cart:      cart.NewHandler(carts),
		Order:     order.NewHandler(carts, formatter),
		Reviews:   reviews.NewHandler(reviews.NewService(reviews.SeedReviews())),
		Recommend: recommend.NewHandler(recommend.NewService(stubModelClient{}, menu)),
	})
}

func TestHealthCheck(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestMenuRouteServesCatalog(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCartRouteIssuesSession(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Session-ID") == "" {
		t.Fatal("expected a session ID on the response")
	}
}
