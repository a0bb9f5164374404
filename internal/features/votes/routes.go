package votes

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/ratelimit"
	"github.com/xyz-asif/voiceup/internal/pkg/validator"
)

// RegisterRoutes registers the vote routes under /reports
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc, limiter *ratelimit.RateLimiter) {
	if err := validator.Register(BindingTags); err != nil {
		logger.Default().With("votes").Error("register binding tags: %v", err)
	}

	group := router.Group("/reports/:id/vote")
	group.Use(authMiddleware)
	{
		group.GET("", handler.Mine)
		group.POST("", ratelimit.UserBasedMiddleware(limiter), handler.Cast)
		group.DELETE("", handler.Retract)
	}
}
