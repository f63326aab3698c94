package recommend

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
// POST /recommendations
// --------------------------------------------------
func (h *Handler) Recommend(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.service.Recommend(c.Request.Context(), in)
	if err != nil {
		if in.Occasion == "" || in.Mood == "" || in.Flavor == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "could not fetch a recommendation, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, rec)
}
