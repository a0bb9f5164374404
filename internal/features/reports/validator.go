package reports

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xyz-asif/voiceup/internal/pkg/cloudinary"
	"github.com/xyz-asif/voiceup/internal/pkg/geo"
	"github.com/xyz-asif/voiceup/internal/pkg/validator"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

const (
	MaxDescriptionLength = 5000
	MaxInlineImages      = 20
	MaxLinks             = 20
)

// Submission errors, checked in this order
var (
	ErrEmptyDescription = fmt.Errorf("%w: description is required", pkgerrors.ErrValidation)
	ErrNoCategory       = fmt.Errorf("%w: corruption type is required", pkgerrors.ErrValidation)
	ErrUnknownCategory  = fmt.Errorf("%w: unknown corruption type", pkgerrors.ErrValidation)
	ErrNoEvidence       = fmt.Errorf("%w: at least one image or link is required", pkgerrors.ErrValidation)
	ErrNoLocation       = fmt.Errorf("%w: location is required", pkgerrors.ErrValidation)
	ErrBadLocation      = fmt.Errorf("%w: coordinates out of range", pkgerrors.ErrValidation)
	ErrImageTooLarge    = fmt.Errorf("%w: each image must be at most 500KB", pkgerrors.ErrValidation)
	ErrImageEncoding    = fmt.Errorf("%w: images must be base64 data URLs", pkgerrors.ErrValidation)
	ErrTooManyItems     = fmt.Errorf("%w: too many evidence items", pkgerrors.ErrValidation)
	ErrDescriptionLong  = fmt.Errorf("%w: description is too long", pkgerrors.ErrValidation)
)

// ValidateSubmission normalizes req in place and returns the first failing rule
func ValidateSubmission(req *SubmitRequest) error {
	req.Description = strings.TrimSpace(req.Description)
	req.CorruptionType = strings.TrimSpace(req.CorruptionType)
	req.EvidenceLinks = cleanLinks(req.EvidenceLinks)

	if req.Description == "" {
		return ErrEmptyDescription
	}
	if req.CorruptionType == "" {
		return ErrNoCategory
	}
	if !IsCategory(req.CorruptionType) {
		return ErrUnknownCategory
	}
	if len(req.EvidenceBase64) == 0 && len(req.EvidenceLinks) == 0 {
		return ErrNoEvidence
	}
	if req.Location == nil || req.Location.Lat == nil || req.Location.Lng == nil {
		return ErrNoLocation
	}
	if !(geo.Point{Lat: *req.Location.Lat, Lng: *req.Location.Lng}).Valid() {
		return ErrBadLocation
	}
	if len([]rune(req.Description)) > MaxDescriptionLength {
		return ErrDescriptionLong
	}
	return validateEvidence(req.EvidenceBase64, req.EvidenceLinks)
}

// ValidateEdit checks the fields present in an owner edit
func ValidateEdit(req *EditRequest) error {
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		if d == "" {
			return ErrEmptyDescription
		}
		if len([]rune(d)) > MaxDescriptionLength {
			return ErrDescriptionLong
		}
		req.Description = &d
	}
	if req.CorruptionType != nil && !IsCategory(*req.CorruptionType) {
		return ErrUnknownCategory
	}
	if req.EvidenceLinks != nil {
		req.EvidenceLinks = cleanLinks(req.EvidenceLinks)
	}
	return validateEvidence(req.EvidenceBase64, req.EvidenceLinks)
}

// BuildAddress joins the non-empty address parts with ", "
func BuildAddress(in *LocationInput) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{in.Address, in.Village, in.Thana, in.District} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func validateEvidence(images, links []string) error {
	if len(images) > MaxInlineImages || len(links) > MaxLinks {
		return ErrTooManyItems
	}
	for _, img := range images {
		size := validator.DataURLSize(img)
		if size < 0 {
			return ErrImageEncoding
		}
		if int64(size) > cloudinary.MaxEvidenceImageSize {
			return ErrImageTooLarge
		}
	}
	return nil
}

func cleanLinks(links []string) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// ValidationMessage strips the sentinel prefix for client-facing messages
func ValidationMessage(err error) string {
	msg := err.Error()
	prefix := pkgerrors.ErrValidation.Error() + ": "
	if strings.HasPrefix(msg, prefix) {
		return msg[len(prefix):]
	}
	if errors.Is(err, pkgerrors.ErrValidation) {
		return msg
	}
	return "invalid request"
}
