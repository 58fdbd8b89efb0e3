package http

import (
	"github.com/gin-gonic/gin"

	"objection-handler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Model-backed routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/process", mw.RateLimit(), h.Process)
	rg.GET("/history", h.History)
}

// RegisterLegacyRoute exposes Process at the legacy conversation-processor path.
func RegisterLegacyRoute(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/conversation-processor", mw.RateLimit(), h.Process)
}
