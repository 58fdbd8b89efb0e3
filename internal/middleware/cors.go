package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowHeaders = "Content-Type"
	corsAllowMethods = "POST, GET, OPTIONS"
)

// CORS sets the cross-origin headers on every response and answers
// preflight requests with an empty 200.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := m.allowedOrigin(c.GetHeader("Origin")); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				c.Header("Vary", "Origin")
			}
		}
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func (m Middleware) allowedOrigin(origin string) string {
	if len(m.corsConfig.AllowedOrigins) == 0 {
		return "*"
	}
	for _, allowed := range m.corsConfig.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin {
			return origin
		}
	}
	return ""
}
