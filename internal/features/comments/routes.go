package comments

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, mw auth.Middlewares, limiter *ratelimit.RateLimiter) {
	// Report discussion routes
	reportComments := router.Group("/reports/:id/comments")
	{
		reportComments.POST("", mw.Required, ratelimit.UserBasedMiddleware(limiter), handler.AddComment)
		reportComments.GET("", mw.Optional, handler.ListComments)
	}

	// Direct comment routes
	comments := router.Group("/comments")
	comments.Use(mw.Required)
	{
		comments.PATCH("/:id", handler.EditComment)
		comments.DELETE("/:id", handler.DeleteComment)
	}
}
