package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

// SessionMiddleware pins every request to a browser session. A missing
// or blank header gets a fresh UUID, echoed back on the response so
// the client can keep sending it. Carts hang off this ID.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set("sessionID", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
