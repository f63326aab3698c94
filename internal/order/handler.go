package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/samm329-ui/ProjectAtithi/internal/cart"
)

type Handler struct {
	carts     *cart.Service
	formatter *Formatter
}

func NewHandler(carts *cart.Service, formatter *Formatter) *Handler {
	return &Handler{carts: carts, formatter: formatter}
}

// --------------------------------------------------
// POST /orders
// --------------------------------------------------
// Validates the order form, renders the deterministic order message,
// and hands back the outbound links. Nothing is stored — the order
// leaves through the customer's own phone.
func (h *Handler) PlaceOrder(c *gin.Context) {
	sessionID := c.GetString("sessionID")

	var customer Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sessionCart := h.carts.Get(sessionID)
	if sessionCart.TotalItems() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	if errs := Validate(customer); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	message := h.formatter.Message(sessionCart, customer)

	c.JSON(http.StatusOK, gin.H{
		"summary":      Summary(sessionCart),
		"message":      message,
		"whatsapp_url": h.formatter.WhatsAppURL(message),
		"tel_url":      h.formatter.TelURL(),
	})
}
