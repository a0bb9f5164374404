package media

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc, limiter *ratelimit.RateLimiter) {
	media := router.Group("/media")
	{
		media.POST("/evidence", authMiddleware, ratelimit.UserBasedMiddleware(limiter), handler.UploadEvidence)
		media.GET("/preview", ratelimit.Middleware(limiter), handler.GetLinkPreview)
	}
}
