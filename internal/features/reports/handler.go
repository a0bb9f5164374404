package reports

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/pagination"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

// Handler handles HTTP requests for the reports feature
type Handler struct {
	service *Service
	log     *logger.Logger
}

// NewHandler creates a new reports handler
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		log:     logger.Default().With("reports"),
	}
}

// ViewerFrom builds the viewer from the auth middleware's context values
func ViewerFrom(c *gin.Context) Viewer {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return Viewer{}
	}
	return Viewer{ID: user.ID, Admin: user.IsAdmin()}
}

// Submit godoc
// @Summary Submit a report
// @Description Create a new corruption report. It starts in the pending state.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitRequest true "Report"
// @Success 201 {object} response.APIResponse{data=Report}
// @Failure 400 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /reports [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	report, err := h.service.Submit(c.Request.Context(), c.GetString(auth.ContextUserID), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, report, "Report submitted")
}

// Get godoc
// @Summary Get a report
// @Description Detail view. Approved reports are public; others are visible to the owner and admins.
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse{data=Detail}
// @Failure 404 {object} response.APIResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Detail(c.Request.Context(), c.Param("id"), ViewerFrom(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, detail)
}

// Mine godoc
// @Summary List my reports
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param status query string false "all, pending, approved or rejected"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.APIResponse{data=response.PaginatedData}
// @Router /reports/mine [get]
func (h *Handler) Mine(c *gin.Context) {
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	cards, total, err := h.service.Mine(c.Request.Context(), c.GetString(auth.ContextUserID), c.Query("status"), req.Page, req.Limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Paginated(c, cards, total, req.Limit, req.Page)
}

// Edit godoc
// @Summary Edit my report
// @Description Owner edit. The report returns to pending for re-review.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body EditRequest true "Changes"
// @Success 200 {object} response.APIResponse{data=Report}
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /reports/{id} [put]
func (h *Handler) Edit(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	report, err := h.service.Edit(c.Request.Context(), ViewerFrom(c), c.Param("id"), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, report, "Report updated and pending review")
}

// Delete godoc
// @Summary Delete a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /reports/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), ViewerFrom(c), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, nil, "Report deleted")
}

// AddUpdate godoc
// @Summary Add a reporter update
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body AddUpdateRequest true "Update"
// @Success 201 {object} response.APIResponse{data=UserUpdate}
// @Router /reports/{id}/updates [post]
func (h *Handler) AddUpdate(c *gin.Context) {
	var req AddUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		response.ValidationError(c, "update text is required", "VALIDATION_FAILED")
		return
	}

	update, err := h.service.AddUpdate(c.Request.Context(), ViewerFrom(c), c.Param("id"), text)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Created(c, update)
}

// Categories godoc
// @Summary List corruption categories
// @Tags reports
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /reports/categories [get]
func (h *Handler) Categories(c *gin.Context) {
	response.Success(c, Categories)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	WriteError(c, h.log, err)
}

// WriteError maps service errors onto the response envelope
func WriteError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrValidation):
		response.ValidationError(c, ValidationMessage(err), "VALIDATION_FAILED")
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
	case errors.Is(err, pkgerrors.ErrForbidden):
		response.Forbidden(c, "You do not have permission to modify this report", "FORBIDDEN")
	case errors.Is(err, pkgerrors.ErrMalformedDocument):
		log.Warn("%v", err)
		response.InternalServerError(c, "Report data is malformed", "MALFORMED_DOCUMENT")
	default:
		log.Error("%v", err)
		response.InternalServerError(c, "Something went wrong", "DATABASE_ERROR")
	}
}
