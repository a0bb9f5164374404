package media

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/pkg/cloudinary"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
)

// Uploader stores evidence images and returns their public URL
type Uploader interface {
	UploadEvidenceImage(ctx context.Context, file interface{}, reportID string) (*cloudinary.UploadResult, error)
}

type Handler struct {
	uploader Uploader
	scraper  *Scraper
	log      *logger.Logger
}

// NewHandler creates the media handler. uploader may be nil when Cloudinary
// is not configured; uploads then answer 503.
func NewHandler(uploader Uploader, scraper *Scraper) *Handler {
	return &Handler{
		uploader: uploader,
		scraper:  scraper,
		log:      logger.Default().With("media"),
	}
}

// UploadEvidence godoc
// @Summary Upload an evidence image
// @Description Uploads one image (at most 500KB) and returns its URL to attach as an evidence link
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Param reportId formData string false "Report the image belongs to"
// @Success 201 {object} response.APIResponse{data=cloudinary.UploadResult}
// @Failure 400 {object} response.APIResponse
// @Failure 413 {object} response.APIResponse
// @Router /media/evidence [post]
func (h *Handler) UploadEvidence(c *gin.Context) {
	if h.uploader == nil {
		response.ServiceUnavailable(c, "Image uploads are not configured", "UPLOADS_DISABLED")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateEvidenceImage(header); err != nil {
		if errors.Is(err, cloudinary.ErrImageTooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "Image must be at most 500KB", "IMAGE_TOO_LARGE")
			return
		}
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.uploader.UploadEvidenceImage(c.Request.Context(), file, c.PostForm("reportId"))
	if err != nil {
		h.log.Error("upload evidence: %v", err)
		response.InternalServerError(c, "Failed to upload file", "UPLOAD_FAILED")
		return
	}
	response.Created(c, result)
}

// GetLinkPreview godoc
// @Summary Preview an evidence link
// @Description Classifies the link; generic pages also get title, description and thumbnail
// @Tags media
// @Produce json
// @Param url query string true "URL to preview"
// @Success 200 {object} response.APIResponse{data=Preview}
// @Failure 400 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /media/preview [get]
func (h *Handler) GetLinkPreview(c *gin.Context) {
	targetURL := c.Query("url")
	if targetURL == "" {
		response.BadRequest(c, "URL is required", "MISSING_PARAM")
		return
	}

	preview, err := h.scraper.Preview(c.Request.Context(), targetURL)
	if errors.Is(err, ErrUnsupportedURL) {
		response.BadRequest(c, err.Error(), "UNSUPPORTED_URL")
		return
	}
	if err != nil {
		h.log.Warn("preview %s: %v", targetURL, err)
		response.Error(c, http.StatusBadGateway, "Failed to fetch metadata", "SCRAPE_FAILED")
		return
	}
	response.Success(c, preview)
}
