package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /menu
// --------------------------------------------------
func (h *Handler) ListMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.service.Categories(),
	})
}

// --------------------------------------------------
// GET /menu/items/:name
// --------------------------------------------------
func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.service.Item(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// POST /menu/items/:name/ratings
// --------------------------------------------------
func (h *Handler) RateItem(c *gin.Context) {
	var req struct {
		Rating int `json:"rating"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.Rate(c.Param("name"), req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrRatingOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}
