package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/pkg/jwt"
	"github.com/xyz-asif/voiceup/internal/pkg/ratelimit"
)

// RegisterRoutes registers the auth routes
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc, limiter *ratelimit.RateLimiter) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", ratelimit.Middleware(limiter), handler.Register)
		auth.POST("/session", ratelimit.Middleware(limiter), handler.Session)
		auth.GET("/me", authMiddleware, handler.Me)
		auth.POST("/logout", authMiddleware, handler.Logout)
	}
}

// Middlewares bundles the three auth middlewares built from one user store
type Middlewares struct {
	Required gin.HandlerFunc
	Optional gin.HandlerFunc
	Admin    gin.HandlerFunc
}

// NewMiddlewares builds the required, optional and admin middlewares
func NewMiddlewares(users UserFinder, cfg *jwt.Config) Middlewares {
	return Middlewares{
		Required: NewAuthMiddleware(users, cfg),
		Optional: OptionalAuthMiddleware(users, cfg),
		Admin:    RequireAdmin(),
	}
}
