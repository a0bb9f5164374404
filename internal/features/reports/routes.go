package reports

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/pkg/ratelimit"
)

// RegisterRoutes registers the report routes
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, mw auth.Middlewares, limiter *ratelimit.RateLimiter) {
	reports := router.Group("/reports")
	{
		reports.GET("/categories", handler.Categories)
		reports.GET("/mine", mw.Required, handler.Mine)
		reports.GET("/:id", mw.Optional, handler.Get)

		protected := reports.Group("")
		protected.Use(mw.Required)
		{
			protected.POST("", ratelimit.UserBasedMiddleware(limiter), handler.Submit)
			protected.PUT("/:id", handler.Edit)
			protected.DELETE("/:id", handler.Delete)
			protected.POST("/:id/updates", ratelimit.UserBasedMiddleware(limiter), handler.AddUpdate)
		}
	}
}
