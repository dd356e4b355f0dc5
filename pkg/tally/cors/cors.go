// Package cors implements the single resolved origin policy for the API.
// The allowed origin list and credential mode come from configuration and
// are injected once at process start.
package cors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	allowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowHeaders = "Content-Type, Authorization"
)

// New returns a middleware allowing the given origins. A "*" entry allows
// every origin, but only when credentials are disabled: browsers reject
// wildcard origins on credentialed requests.
func New(origins []string, allowCredentials bool) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	wildcard := false
	for _, o := range origins {
		if o == "*" {
			wildcard = true
			continue
		}
		allowed[o] = true
	}
	if allowCredentials {
		wildcard = false
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		c.Header("Vary", "Origin")

		// Requests without an Origin (curl, server-to-server) pass
		// through untouched
		if origin != "" {
			switch {
			case allowed[origin]:
				c.Header("Access-Control-Allow-Origin", origin)
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
			case wildcard:
				c.Header("Access-Control-Allow-Origin", "*")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", allowMethods)
			c.Header("Access-Control-Allow-Headers", allowHeaders)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
