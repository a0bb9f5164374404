package votes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
	"github.com/xyz-asif/voiceup/internal/pkg/validator"
)

// Handler handles vote-related HTTP requests
type Handler struct {
	service *Service
	log     *logger.Logger
}

// NewHandler creates a new vote handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, log: logger.Default().With("votes")}
}

// Cast godoc
// @Summary Vote on a report
// @Description Casting the current vote type again removes the vote; another type replaces it.
// @Tags votes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body CastRequest true "Vote"
// @Success 200 {object} response.APIResponse{data=VoteResponse}
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /reports/{id}/vote [post]
func (h *Handler) Cast(c *gin.Context) {
	var req CastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := validator.FieldErrors(err)
		if fields["Type"] == tagVoteType {
			response.ErrorWithData(c, http.StatusUnprocessableEntity, "Unknown vote type", fields, "VALIDATION_FAILED")
			return
		}
		response.BindJSONError(c, err)
		return
	}

	out, err := h.service.Cast(c.Request.Context(), reports.ViewerFrom(c), c.Param("id"), req.Type)
	if err != nil {
		reports.WriteError(c, h.log, err)
		return
	}
	response.Success(c, out)
}

// Retract godoc
// @Summary Remove your vote
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse{data=VoteResponse}
// @Failure 404 {object} response.APIResponse
// @Router /reports/{id}/vote [delete]
func (h *Handler) Retract(c *gin.Context) {
	out, err := h.service.Retract(c.Request.Context(), reports.ViewerFrom(c), c.Param("id"))
	if err != nil {
		reports.WriteError(c, h.log, err)
		return
	}
	response.Success(c, out)
}

// Mine godoc
// @Summary Get your vote on a report
// @Tags votes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse{data=VoteResponse}
// @Failure 404 {object} response.APIResponse
// @Router /reports/{id}/vote [get]
func (h *Handler) Mine(c *gin.Context) {
	out, err := h.service.Mine(c.Request.Context(), reports.ViewerFrom(c), c.Param("id"))
	if err != nil {
		reports.WriteError(c, h.log, err)
		return
	}
	response.Success(c, out)
}
