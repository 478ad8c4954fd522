package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Browser clients of this API are the operations panel (supervisors,
// admins) and the guide app; both send the JWT in the Authorization
// header, so that header must be allowed on preflight.
const (
	corsMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsHeaders = "Authorization, Content-Type, X-Request-ID"
	// Preflight responses cacheable for 10 minutes.
	corsMaxAge = "600"
)

// CORS answers preflight requests and tags every response with the
// cross-origin headers. Origin is open: the API is token-authenticated and
// carries no cookies, so there is no ambient credential to protect.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", corsMethods)
			c.Header("Access-Control-Allow-Headers", corsHeaders)
			c.Header("Access-Control-Max-Age", corsMaxAge)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
