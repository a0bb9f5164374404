package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/features/auth"
)

// RegisterRoutes registers the moderation routes. Every route requires a
// signed-in, non-disabled admin.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, mw auth.Middlewares) {
	admin := router.Group("/admin")
	admin.Use(mw.Required, mw.Admin)

	reports := admin.Group("/reports")
	{
		reports.GET("", handler.ListReports)
		reports.PATCH("/:id", handler.EditReport)
		reports.POST("/:id/approve", handler.Approve)
		reports.POST("/:id/reject", handler.Reject)
		reports.PUT("/:id/action", handler.SetAction)
		reports.DELETE("/:id/images/:index", handler.RemoveImage)
		reports.POST("/:id/updates/:updateId/approve", handler.ApproveUpdate)
		reports.POST("/:id/updates/:updateId/reject", handler.RejectUpdate)
	}

	users := admin.Group("/users")
	{
		users.GET("", handler.ListUsers)
		users.POST("/:uid/disable", handler.DisableUser)
		users.POST("/:uid/enable", handler.EnableUser)
		users.DELETE("/:uid", handler.DeleteUser)
	}
}
