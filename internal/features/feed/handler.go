package feed

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
)

type Handler struct {
	service *Service
	log     *logger.Logger
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		log:     logger.Default().With("feed"),
	}
}

// GetFeed godoc
// @Summary Get the report feed
// @Description Approved reports ranked by latest, trending (vote total) or nearby (within 50 km)
// @Tags feed
// @Produce json
// @Param mode query string false "latest, trending or nearby (default latest)"
// @Param category query string false "Category label or all"
// @Param lat query number false "Viewer latitude (nearby)"
// @Param lng query number false "Viewer longitude (nearby)"
// @Param page query int false "Page"
// @Param limit query int false "Items per page (max 100)"
// @Success 200 {object} response.APIResponse{data=FeedResponse}
// @Failure 400 {object} response.APIResponse
// @Router /feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
	var query FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}

	opts, err := ValidateFeedQuery(&query)
	if err != nil {
		code := "INVALID_QUERY"
		if errors.Is(err, ErrViewerLocationRequired) {
			code = "LOCATION_REQUIRED"
		}
		response.BadRequest(c, err.Error(), code)
		return
	}

	feed, err := h.service.Feed(c.Request.Context(), opts, query.Page, query.Limit)
	if err != nil {
		h.log.Error("load feed: %v", err)
		response.InternalServerError(c, "Failed to load feed", "DATABASE_ERROR")
		return
	}

	response.Success(c, feed)
}
