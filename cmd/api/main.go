package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/samm329-ui/ProjectAtithi/internal/cart"
	"github.com/samm329-ui/ProjectAtithi/internal/catalog"
	"github.com/samm329-ui/ProjectAtithi/internal/config"
	"github.com/samm329-ui/ProjectAtithi/internal/order"
	"github.com/samm329-ui/ProjectAtithi/internal/recommend"
	"github.com/samm329-ui/ProjectAtithi/internal/reviews"
	"github.com/samm329-ui/ProjectAtithi/internal/router"
	"github.com/samm329-ui/ProjectAtithi/internal/search"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// Only the recommendation feature needs credentials; the site
	// runs without them, minus that one endpoint.
	for _, k := range []string{"GEMINI_API_KEY", "GEMINI_MODEL"} {
		if os.Getenv(k) == "" {
			log.Printf("⚠️  %s not set — dish recommendations will fail", k)
		}
	}

	site := config.LoadSite()

	// ───────────────────────── CATALOG ─────────────────────────
	menuRepo := catalog.NewInMemoryRepository(catalog.MenuData())
	menuService := catalog.NewService(menuRepo)

	// ───────────────────────── CARTS ─────────────────────────
	cartRepo := cart.NewInMemoryRepository()
	cartService := cart.NewService(cartRepo, menuService)

	// ───────────────────────── ORDERS ─────────────────────────
	formatter := order.NewFormatter(site.BrandName, site.ContactPhone, site.WhatsAppNumber)

	// ───────────────────────── REVIEWS ─────────────────────────
	reviewService := reviews.NewService(reviews.SeedReviews())

	// ───────────────────────── RECOMMENDATIONS ─────────────────────────
	recommendService := recommend.NewService(recommend.NewGeminiClient(), menuService)

	// ───────────────────────── GIN ─────────────────────────
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.New(router.Handlers{
		Catalog:   catalog.NewHandler(menuService),
		Search:    search.NewHandler(menuService),
		Cart:      cart.NewHandler(cartService),
		Order:     order.NewHandler(cartService, formatter),
		Reviews:   reviews.NewHandler(reviewService),
		Recommend: recommend.NewHandler(recommendService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 %s ordering API running on :%s", site.BrandName, port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
