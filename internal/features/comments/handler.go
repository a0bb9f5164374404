package comments

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

type Handler struct {
	service *Service
	log     *logger.Logger
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, log: logger.Default().With("comments")}
}

// AddComment godoc
// @Summary Comment on a report
// @Description Add a comment, or a reply when parentId is set
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} response.APIResponse{data=Entry}
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /reports/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	entry, err := h.service.Create(c.Request.Context(), reports.ViewerFrom(c), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, entry)
}

// ListComments godoc
// @Summary List the discussion of a report
// @Description Comments oldest first, each root followed by its replies
// @Tags comments
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse{data=ThreadResponse}
// @Failure 404 {object} response.APIResponse
// @Router /reports/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	entries, err := h.service.Thread(c.Request.Context(), reports.ViewerFrom(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, ThreadResponse{Comments: entries, Total: len(entries)})
}

// EditComment godoc
// @Summary Edit comment
// @Description Author or admin only
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Param request body UpdateCommentRequest true "Updated text"
// @Success 200 {object} response.APIResponse{data=Comment}
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /comments/{id} [patch]
func (h *Handler) EditComment(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	comment, err := h.service.Edit(c.Request.Context(), reports.ViewerFrom(c), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, comment, "Comment updated")
}

// DeleteComment godoc
// @Summary Delete comment
// @Description Author or admin only
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), reports.ViewerFrom(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, nil, "Comment deleted")
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCommentNotFound):
		response.NotFound(c, "Comment not found", "COMMENT_NOT_FOUND")
	case errors.Is(err, pkgerrors.ErrForbidden):
		response.Forbidden(c, "Cannot modify others' comments", "FORBIDDEN")
	default:
		reports.WriteError(c, h.log, err)
	}
}
