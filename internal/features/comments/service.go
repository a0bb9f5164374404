package comments

import (
	"context"
	"errors"
	"fmt"

	"github.com/xyz-asif/voiceup/internal/features/reports"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

// Store is the persistence the service needs
type Store interface {
	CreateComment(ctx context.Context, comment *Comment) error
	GetCommentByID(ctx context.Context, id string) (*Comment, error)
	UpdateText(ctx context.Context, id, text string) error
	DeleteComment(ctx context.Context, id string) error
	ListByReport(ctx context.Context, reportID string) ([]Comment, error)
}

// ReportAccess loads a report on behalf of a viewer, hiding what they may
// not see
type ReportAccess interface {
	Get(ctx context.Context, id string, viewer reports.Viewer) (*reports.Report, error)
}

var ErrCommentNotFound = fmt.Errorf("%w: comment", pkgerrors.ErrNotFound)

type Service struct {
	store   Store
	reports ReportAccess
}

func NewService(store Store, access ReportAccess) *Service {
	return &Service{store: store, reports: access}
}

// Create adds a comment or reply. A parent must belong to the same report.
func (s *Service) Create(ctx context.Context, viewer reports.Viewer, reportID string, req *CreateCommentRequest) (*Entry, error) {
	if err := ValidateCreateCommentRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.reports.Get(ctx, reportID, viewer); err != nil {
		return nil, err
	}

	depth := 0
	if req.ParentID != nil {
		parent, err := s.store.GetCommentByID(ctx, *req.ParentID)
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return nil, ErrBadParent
		}
		if err != nil {
			return nil, err
		}
		if parent.ReportID != reportID {
			return nil, ErrBadParent
		}
		depth = s.depthOf(ctx, parent) + 1
	}

	comment := &Comment{
		ReportID: reportID,
		UserID:   viewer.ID,
		Text:     req.Text,
		ParentID: req.ParentID,
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	indent := depth
	if indent > MaxIndent {
		indent = MaxIndent
	}
	return &Entry{Comment: *comment, Depth: depth, Indent: indent, CanModify: true}, nil
}

// Thread returns the discussion of a report in display order
func (s *Service) Thread(ctx context.Context, viewer reports.Viewer, reportID string) ([]Entry, error) {
	if _, err := s.reports.Get(ctx, reportID, viewer); err != nil {
		return nil, err
	}
	items, err := s.store.ListByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return BuildThread(items, viewer.ID, viewer.Admin), nil
}

// Edit replaces the text of a comment. Only the author or an admin may edit.
func (s *Service) Edit(ctx context.Context, viewer reports.Viewer, id string, req *UpdateCommentRequest) (*Comment, error) {
	if err := ValidateUpdateCommentRequest(req); err != nil {
		return nil, err
	}
	comment, err := s.authorized(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateText(ctx, id, req.Text); err != nil {
		return nil, err
	}
	comment.Text = req.Text
	comment.Edited = true
	return comment, nil
}

// Delete removes a comment. Only the author or an admin may delete.
func (s *Service) Delete(ctx context.Context, viewer reports.Viewer, id string) error {
	if _, err := s.authorized(ctx, viewer, id); err != nil {
		return err
	}
	return s.store.DeleteComment(ctx, id)
}

func (s *Service) authorized(ctx context.Context, viewer reports.Viewer, id string) (*Comment, error) {
	comment, err := s.store.GetCommentByID(ctx, id)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	if !viewer.Admin && !comment.IsAuthoredBy(viewer.ID) {
		return nil, pkgerrors.ErrForbidden
	}
	return comment, nil
}

// depthOf walks up the parent chain. A broken chain stops the walk.
func (s *Service) depthOf(ctx context.Context, c *Comment) int {
	depth := 0
	seen := map[string]bool{c.ID: true}
	for !c.IsRoot() {
		parent, err := s.store.GetCommentByID(ctx, *c.ParentID)
		if err != nil || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		depth++
		c = parent
	}
	return depth
}
