package admin

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/pagination"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
)

type Handler struct {
	service *Service
	log     *logger.Logger
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, log: logger.Default().With("admin")}
}

// ListReports godoc
// @Summary List all reports
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "all, pending, approved or rejected"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.APIResponse{data=response.PaginatedData}
// @Failure 403 {object} response.APIResponse
// @Router /admin/reports [get]
func (h *Handler) ListReports(c *gin.Context) {
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	cards, total, err := h.service.ListReports(c.Request.Context(), c.Query("status"), req.Page, req.Limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Paginated(c, cards, total, req.Limit, req.Page)
}

// Approve godoc
// @Summary Approve a report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/reports/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	h.setStatus(c, reports.StatusApproved, "Report approved")
}

// Reject godoc
// @Summary Reject a report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/reports/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	h.setStatus(c, reports.StatusRejected, "Report rejected")
}

func (h *Handler) setStatus(c *gin.Context, status, message string) {
	if err := h.service.SetStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"status": status}, message)
}

// EditReport godoc
// @Summary Edit a report
// @Description Partial edit of description, category, address, links, and removal of inline images by index
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body ReportEditRequest true "Changes"
// @Success 200 {object} response.APIResponse{data=reports.Report}
// @Failure 422 {object} response.APIResponse
// @Router /admin/reports/{id} [patch]
func (h *Handler) EditReport(c *gin.Context) {
	var req ReportEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	report, err := h.service.EditReport(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, report, "Report updated")
}

// SetAction godoc
// @Summary Set the action taken on a report
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body ActionRequest true "Action"
// @Success 200 {object} response.APIResponse
// @Router /admin/reports/{id}/action [put]
func (h *Handler) SetAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := h.service.SetAction(c.Request.Context(), c.Param("id"), req.ActionTaken); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, nil, "Action saved")
}

// RemoveImage godoc
// @Summary Remove one inline image
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param index path int true "Image index"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /admin/reports/{id}/images/{index} [delete]
func (h *Handler) RemoveImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.BadRequest(c, "Invalid image index", "INVALID_INDEX")
		return
	}
	if err := h.service.RemoveImage(c.Request.Context(), c.Param("id"), index); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, nil, "Image removed")
}

// ApproveUpdate godoc
// @Summary Approve a reporter update
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param updateId path string true "Update ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/reports/{id}/updates/{updateId}/approve [post]
func (h *Handler) ApproveUpdate(c *gin.Context) {
	h.moderateUpdate(c, reports.StatusApproved)
}

// RejectUpdate godoc
// @Summary Reject a reporter update
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param updateId path string true "Update ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/reports/{id}/updates/{updateId}/reject [post]
func (h *Handler) RejectUpdate(c *gin.Context) {
	h.moderateUpdate(c, reports.StatusRejected)
}

func (h *Handler) moderateUpdate(c *gin.Context, status string) {
	err := h.service.ModerateUpdate(c.Request.Context(), c.Param("id"), c.Param("updateId"), status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"status": status}, "Update "+status)
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.APIResponse{data=response.PaginatedData}
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	users, total, err := h.service.ListUsers(c.Request.Context(), req.Page, req.Limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Paginated(c, users, total, req.Limit, req.Page)
}

// DisableUser godoc
// @Summary Disable a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param uid path string true "User ID"
// @Success 200 {object} response.APIResponse{data=auth.User}
// @Failure 403 {object} response.APIResponse
// @Router /admin/users/{uid}/disable [post]
func (h *Handler) DisableUser(c *gin.Context) {
	h.setDisabled(c, true)
}

// EnableUser godoc
// @Summary Enable a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param uid path string true "User ID"
// @Success 200 {object} response.APIResponse{data=auth.User}
// @Router /admin/users/{uid}/enable [post]
func (h *Handler) EnableUser(c *gin.Context) {
	h.setDisabled(c, false)
}

func (h *Handler) setDisabled(c *gin.Context, disabled bool) {
	actor, _ := auth.CurrentUser(c)
	user, err := h.service.SetUserDisabled(c.Request.Context(), actor, c.Param("uid"), disabled)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param uid path string true "User ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /admin/users/{uid} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	actor, _ := auth.CurrentUser(c)
	if err := h.service.DeleteUser(c.Request.Context(), actor, c.Param("uid")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, nil, "User deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSelfAction):
		response.Forbidden(c, "You cannot disable or delete your own account", "SELF_ACTION")
	case errors.Is(err, ErrUserNotFound):
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
	default:
		reports.WriteError(c, h.log, err)
	}
}
