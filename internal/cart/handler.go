package cart

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

func cartResponse(c *Cart) gin.H {
	lines := c.Lines
	if lines == nil {
		lines = []Line{}
	}
	return gin.H{
		"lines":         lines,
		"total_items":   c.TotalItems(),
		"subtotal":      c.Subtotal(),
		"total_savings": c.TotalSavings(),
	}
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	c.JSON(http.StatusOK, cartResponse(h.service.Get(sessionID)))
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	outcome, qty, err := h.service.Add(sessionID, req.Name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome":  outcome,
		"quantity": qty,
		"cart":     cartResponse(h.service.Get(sessionID)),
	})
}

// --------------------------------------------------
// DELETE /cart/items/:name
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	outcome, qty := h.service.Remove(sessionID, c.Param("name"))

	c.JSON(http.StatusOK, gin.H{
		"outcome":  outcome,
		"quantity": qty,
		"cart":     cartResponse(h.service.Get(sessionID)),
	})
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) EmptyCart(c *gin.Context) {
	sessionID := c.GetString("sessionID")
	h.service.Empty(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"outcome": "emptied",
		"cart":    cartResponse(h.service.Get(sessionID)),
	})
}
