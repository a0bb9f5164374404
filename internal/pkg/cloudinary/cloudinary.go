package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Service handles Cloudinary upload operations for report evidence
type Service struct {
	cld          *cloudinary.Cloudinary
	cloudName    string
	uploadFolder string
}

// UploadResult contains the result of a successful upload
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FileSize int64  `json:"fileSize"`
	Format   string `json:"format"`
}

var versionSegment = regexp.MustCompile(`^v[0-9]+$`)

var (
	AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	// MaxEvidenceImageSize is the per-image cap for evidence photos
	MaxEvidenceImageSize = int64(500000)

	ErrImageTooLarge   = errors.New("image exceeds 500KB")
	ErrInvalidFileType = errors.New("invalid image file type")
)

// NewService creates a new Cloudinary service instance
func NewService(cloudName, apiKey, apiSecret, uploadFolder string) (*Service, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if uploadFolder == "" {
		uploadFolder = "voiceup"
	}

	return &Service{
		cld:          cld,
		cloudName:    cloudName,
		uploadFolder: uploadFolder,
	}, nil
}

// UploadEvidenceImage uploads an evidence photo. file may be an io.Reader
// (multipart upload) or a data URL string.
func (s *Service) UploadEvidenceImage(ctx context.Context, file interface{}, reportID string) (*UploadResult, error) {
	switch file.(type) {
	case io.Reader, string:
	default:
		return nil, ErrInvalidFileType
	}

	folder := s.uploadFolder + "/evidence"
	if reportID != "" {
		folder += "/" + reportID
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
		FileSize: int64(result.Bytes),
		Format:   result.Format,
	}, nil
}

// Delete removes an asset from Cloudinary
func (s *Service) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.New("publicID is required")
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

// PublicID extracts the asset id from a delivery URL of this cloud, e.g.
// https://res.cloudinary.com/<cloud>/image/upload/v17/voiceup/evidence/a.jpg
// yields "voiceup/evidence/a". Foreign URLs return false.
func (s *Service) PublicID(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil || u.Host != "res.cloudinary.com" {
		return "", false
	}
	prefix := "/" + s.cloudName + "/image/upload/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}

	parts := strings.Split(strings.TrimPrefix(u.Path, prefix), "/")
	if len(parts) > 1 && versionSegment.MatchString(parts[0]) {
		parts = parts[1:]
	}
	id := strings.Join(parts, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if !strings.HasPrefix(id, s.uploadFolder+"/") {
		return "", false
	}
	return id, true
}

// Purge deletes the uploaded evidence among links and returns how many
// assets were removed. Links hosted elsewhere are ignored.
func (s *Service) Purge(ctx context.Context, links []string) (int, error) {
	var errs []error
	removed := 0
	for _, link := range links {
		id, ok := s.PublicID(link)
		if !ok {
			continue
		}
		if err := s.Delete(ctx, id); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

// ValidateEvidenceImage validates a multipart evidence upload
func ValidateEvidenceImage(header *multipart.FileHeader) error {
	if header.Size > MaxEvidenceImageSize {
		return ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range AllowedImageTypes {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %s. Allowed types: %s", ErrInvalidFileType, ext, strings.Join(AllowedImageTypes, ", "))
}
