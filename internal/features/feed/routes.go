package feed

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, optionalAuth gin.HandlerFunc) {
	router.GET("/feed", optionalAuth, handler.GetFeed)
}
