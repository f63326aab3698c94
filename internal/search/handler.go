package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samm329-ui/ProjectAtithi/internal/catalog"
)

type Handler struct {
	service *catalog.Service
}

func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /menu/search?q=
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")

	results := Match(query, h.service.Categories())
	if results == nil {
		results = []catalog.MenuItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": results,
	})
}
