package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/samm329-ui/ProjectAtithi/internal/cart"
	"github.com/samm329-ui/ProjectAtithi/internal/catalog"
	"github.com/samm329-ui/ProjectAtithi/internal/middleware"
	"github.com/samm329-ui/ProjectAtithi/internal/order"
	"github.com/samm329-ui/ProjectAtithi/internal/recommend"
	"github.com/samm329-ui/ProjectAtithi/internal/reviews"
	"github.com/samm329-ui/ProjectAtithi/internal/search"
)

type Handlers struct {
	Catalog   *catalog.Handler
	Search    *search.Handler
	Cart      *cart.Handler
	Order     *order.Handler
	Reviews   *reviews.Handler
	Recommend *recommend.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	menu := r.Group("/menu")
	{
		menu.GET("", h.Catalog.ListMenu)
		menu.GET("/search", h.Search.Search)
		menu.GET("/items/:name", h.Catalog.GetItem)
		menu.POST("/items/:name/ratings", h.Catalog.RateItem)
	}

	session := r.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.GET("/cart", h.Cart.Get)
		session.POST("/cart/items", h.Cart.AddItem)
		session.DELETE("/cart/items/:name", h.Cart.RemoveItem)
		session.DELETE("/cart", h.Cart.EmptyCart)

		session.POST("/orders", h.Order.PlaceOrder)
	}

	r.GET("/reviews", h.Reviews.List)
	r.POST("/reviews", h.Reviews.Submit)

	r.POST("/recommendations", h.Recommend.Recommend)

	return r
}
