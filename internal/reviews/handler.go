package reviews

import (
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
// GET /reviews
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reviews": h.service.List()})
}

// --------------------------------------------------
// POST /reviews
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Title  string `json:"title"`
		Review string `json:"review"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.service.Submit(req.Name, req.Title, req.Review)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}
