package routes

import (
	"strings"

	"premiumpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// CallerIdentity copies the authenticated identity injected by the upstream
// gateway into the request context. Authentication itself happens upstream;
// absent headers mean an anonymous capture.
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader("X-Account-ID")); id != "" {
			c.Set(handlers.ContextAccountID, id)
		}
		if email := strings.TrimSpace(c.GetHeader("X-Account-Email")); email != "" {
			c.Set(handlers.ContextAccountEmail, email)
		}
		c.Next()
	}
}
