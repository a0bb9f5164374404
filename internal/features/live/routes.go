package live

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the WebSocket endpoints
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, optionalAuth gin.HandlerFunc) {
	live := router.Group("/live")
	live.Use(optionalAuth)
	{
		live.GET("/feed", handler.Feed)
		live.GET("/reports/:id", handler.Report)
	}
}
