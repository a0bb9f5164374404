package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/xyz-asif/voiceup/internal/features/evidence"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence the service needs
type Store interface {
	Create(ctx context.Context, report *Report) error
	GetByID(ctx context.Context, id string) (*Report, error)
	ListByUser(ctx context.Context, userID, status string, page, limit int) ([]Report, int64, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	AppendUpdate(ctx context.Context, id string, update UserUpdate) error
}

// CommentCounter counts comments per report in one query
type CommentCounter interface {
	CountByReports(ctx context.Context, reportIDs []string) (map[string]int64, error)
}

// VoteReader returns the vote type a user cast on a report, or ""
type VoteReader interface {
	GetUserVote(ctx context.Context, reportID, userID string) (string, error)
}

// AssetPurger removes uploaded evidence files that a deleted report links to
type AssetPurger interface {
	Purge(ctx context.Context, links []string) (int, error)
}

// Viewer is the caller on whose behalf a report is read or changed
type Viewer struct {
	ID    string
	Admin bool
}

// Anonymous reports whether no user is signed in
func (v Viewer) Anonymous() bool {
	return v.ID == ""
}

// Service implements report submission and owner operations
type Service struct {
	store    Store
	comments CommentCounter
	votes    VoteReader
	assets   AssetPurger
	log      *logger.Logger
}

// NewService creates a new report service
func NewService(store Store, comments CommentCounter, votes VoteReader) *Service {
	return &Service{
		store:    store,
		comments: comments,
		votes:    votes,
		log:      logger.Default().With("reports"),
	}
}

// WithAssets enables removal of hosted evidence when reports are deleted
func (s *Service) WithAssets(assets AssetPurger) *Service {
	s.assets = assets
	return s
}

// Submit validates and stores a new report in the pending state
func (s *Service) Submit(ctx context.Context, userID string, req *SubmitRequest) (*Report, error) {
	if err := ValidateSubmission(req); err != nil {
		return nil, err
	}

	report := &Report{
		UserID:         userID,
		Description:    req.Description,
		CorruptionType: req.CorruptionType,
		Location: &Location{
			Lat:     *req.Location.Lat,
			Lng:     *req.Location.Lng,
			Address: BuildAddress(req.Location),
		},
		EvidenceBase64: nonNil(req.EvidenceBase64),
		EvidenceLinks:  req.EvidenceLinks,
		Status:         StatusPending,
		UserUpdates:    []UserUpdate{},
	}

	if err := s.store.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

// Get loads a report if the viewer may see it. Hidden reports are
// indistinguishable from missing ones.
func (s *Service) Get(ctx context.Context, id string, viewer Viewer) (*Report, error) {
	report, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !report.CanBeViewed(viewer.ID, viewer.Admin) {
		return nil, pkgerrors.ErrNotFound
	}
	return report, nil
}

// Detail builds the full report view for a viewer
func (s *Service) Detail(ctx context.Context, id string, viewer Viewer) (*Detail, error) {
	report, err := s.Get(ctx, id, viewer)
	if err != nil {
		return nil, err
	}

	privileged := viewer.Admin || report.IsOwnedBy(viewer.ID)
	d := &Detail{
		Report:      report,
		Gallery:     evidence.BuildGallery(report.EvidenceBase64, report.EvidenceLinks, evidence.ViewDetail),
		Segments:    evidence.Linkify(report.Description),
		UserUpdates: report.VisibleUpdates(privileged),
	}

	counts := s.CommentCounts(ctx, []string{report.ID})
	d.CommentCount = counts[report.ID]

	if !viewer.Anonymous() && s.votes != nil {
		vote, err := s.votes.GetUserVote(ctx, report.ID, viewer.ID)
		if err != nil {
			s.log.Warn("load vote of %s on %s: %v", viewer.ID, report.ID, err)
		}
		d.MyVote = vote
	}
	return d, nil
}

// Mine lists the viewer's own reports as cards
func (s *Service) Mine(ctx context.Context, userID, status string, page, limit int) ([]Card, int64, error) {
	if status == "all" {
		status = ""
	}
	if status != "" && !IsStatus(status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", pkgerrors.ErrValidation, status)
	}

	items, total, err := s.store.ListByUser(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return s.Cards(ctx, items), total, nil
}

// Cards converts reports to card views with comment counts attached
func (s *Service) Cards(ctx context.Context, items []Report) []Card {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	counts := s.CommentCounts(ctx, ids)

	cards := make([]Card, len(items))
	for i := range items {
		cards[i] = NewCard(&items[i], counts[items[i].ID])
	}
	return cards
}

// CommentCounts returns comment totals per report. Backend failures are
// logged and yield zero counts.
func (s *Service) CommentCounts(ctx context.Context, ids []string) map[string]int64 {
	if s.comments == nil || len(ids) == 0 {
		return map[string]int64{}
	}
	counts, err := s.comments.CountByReports(ctx, ids)
	if err != nil {
		s.log.Warn("count comments: %v", err)
		return map[string]int64{}
	}
	return counts
}

// Edit applies an owner edit and sends the report back to review
func (s *Service) Edit(ctx context.Context, viewer Viewer, id string, req *EditRequest) (*Report, error) {
	report, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !report.IsOwnedBy(viewer.ID) {
		return nil, pkgerrors.ErrForbidden
	}
	if err := ValidateEdit(req); err != nil {
		return nil, err
	}

	fields := bson.M{"status": StatusPending}
	if req.Description != nil {
		fields["description"] = *req.Description
		report.Description = *req.Description
	}
	if req.CorruptionType != nil {
		fields["corruptionType"] = *req.CorruptionType
		report.CorruptionType = *req.CorruptionType
	}
	if req.EvidenceBase64 != nil {
		fields["evidenceBase64"] = req.EvidenceBase64
		report.EvidenceBase64 = req.EvidenceBase64
	}
	if req.EvidenceLinks != nil {
		fields["evidenceLinks"] = req.EvidenceLinks
		report.EvidenceLinks = req.EvidenceLinks
	}

	if len(report.EvidenceBase64) == 0 && len(report.EvidenceLinks) == 0 {
		return nil, ErrNoEvidence
	}

	if err := s.store.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	report.Status = StatusPending
	report.UpdatedAt = time.Now()
	return report, nil
}

// Delete removes a report. Owners may delete their own, admins any.
func (s *Service) Delete(ctx context.Context, viewer Viewer, id string) error {
	report, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !viewer.Admin && !report.IsOwnedBy(viewer.ID) {
		return pkgerrors.ErrForbidden
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if s.assets != nil {
		if n, err := s.assets.Purge(ctx, report.EvidenceLinks); err != nil {
			s.log.Warn("purge evidence of report %s: %v", id, err)
		} else if n > 0 {
			s.log.Debug("purged %d evidence assets of report %s", n, id)
		}
	}
	return nil
}

// AddUpdate appends a pending reporter update
func (s *Service) AddUpdate(ctx context.Context, viewer Viewer, id, text string) (*UserUpdate, error) {
	report, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !report.IsOwnedBy(viewer.ID) {
		return nil, pkgerrors.ErrForbidden
	}

	update := UserUpdate{
		ID:        primitive.NewObjectID().Hex(),
		Text:      text,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.store.AppendUpdate(ctx, id, update); err != nil {
		return nil, err
	}
	return &update, nil
}
