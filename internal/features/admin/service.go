package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// ReportStore is the report persistence moderation needs
type ReportStore interface {
	GetByID(ctx context.Context, id string) (*reports.Report, error)
	List(ctx context.Context, status string, page, limit int) ([]reports.Report, int64, error)
	Update(ctx context.Context, id string, fields bson.M) error
	RemoveImage(ctx context.Context, id string, index int) error
	SetUpdateStatus(ctx context.Context, id, updateID, status string) error
}

// CardBuilder renders reports as list cards
type CardBuilder interface {
	Cards(ctx context.Context, items []reports.Report) []reports.Card
}

// UserStore is the profile persistence user management needs
type UserStore interface {
	GetUserByID(ctx context.Context, uid string) (*auth.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]auth.User, int64, error)
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	DeleteUser(ctx context.Context, uid string) error
}

// AccountManager mirrors account changes into the identity provider
type AccountManager interface {
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	DeleteAccount(ctx context.Context, uid string) error
}

var (
	ErrSelfAction   = fmt.Errorf("%w: admins cannot disable or delete their own account", pkgerrors.ErrForbidden)
	ErrUserNotFound = fmt.Errorf("%w: user", pkgerrors.ErrNotFound)
	ErrBadIndex     = fmt.Errorf("%w: image index out of range", pkgerrors.ErrValidation)
	ErrBadStatus    = fmt.Errorf("%w: unknown status", pkgerrors.ErrValidation)
)

// Service implements moderation. Callers must already be verified admins.
type Service struct {
	reports  ReportStore
	cards    CardBuilder
	users    UserStore
	accounts AccountManager
	log      *logger.Logger
}

func NewService(reportStore ReportStore, cards CardBuilder, users UserStore, accounts AccountManager) *Service {
	return &Service{
		reports:  reportStore,
		cards:    cards,
		users:    users,
		accounts: accounts,
		log:      logger.Default().With("admin"),
	}
}

// ListReports returns all reports newest first, optionally by status
func (s *Service) ListReports(ctx context.Context, status string, page, limit int) ([]reports.Card, int64, error) {
	if status == "all" {
		status = ""
	}
	if status != "" && !reports.IsStatus(status) {
		return nil, 0, ErrBadStatus
	}
	items, total, err := s.reports.List(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return s.cards.Cards(ctx, items), total, nil
}

// SetStatus approves or rejects a report
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if status != reports.StatusApproved && status != reports.StatusRejected {
		return ErrBadStatus
	}
	return s.reports.Update(ctx, id, bson.M{"status": status})
}

// EditReport applies a moderator edit. The status is left as it is.
func (s *Service) EditReport(ctx context.Context, id string, req *ReportEditRequest) (*reports.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := withoutIndices(report.EvidenceBase64, req.RemoveImages)
	if err != nil {
		return nil, err
	}

	edit := &reports.EditRequest{
		Description:    req.Description,
		CorruptionType: req.CorruptionType,
		EvidenceLinks:  req.EvidenceLinks,
	}
	if err := reports.ValidateEdit(edit); err != nil {
		return nil, err
	}

	fields := bson.M{}
	if edit.Description != nil {
		fields["description"] = *edit.Description
		report.Description = *edit.Description
	}
	if edit.CorruptionType != nil {
		fields["corruptionType"] = *edit.CorruptionType
		report.CorruptionType = *edit.CorruptionType
	}
	if edit.EvidenceLinks != nil {
		fields["evidenceLinks"] = edit.EvidenceLinks
		report.EvidenceLinks = edit.EvidenceLinks
	}
	if len(req.RemoveImages) > 0 {
		fields["evidenceBase64"] = images
		report.EvidenceBase64 = images
	}
	if req.Location != nil && req.Location.Address != nil {
		if report.Location == nil {
			return nil, reports.ErrNoLocation
		}
		address := strings.TrimSpace(*req.Location.Address)
		fields["location.address"] = address
		report.Location.Address = address
	}

	if len(report.EvidenceBase64) == 0 && len(report.EvidenceLinks) == 0 {
		return nil, reports.ErrNoEvidence
	}
	if len(fields) == 0 {
		return report, nil
	}
	if err := s.reports.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return report, nil
}

// SetAction records what was done about a report. Empty text clears it.
func (s *Service) SetAction(ctx context.Context, id, text string) error {
	return s.reports.Update(ctx, id, bson.M{"actionTaken": strings.TrimSpace(text)})
}

// RemoveImage drops one inline image by index. Like EditReport it refuses to
// remove the last piece of evidence.
func (s *Service) RemoveImage(ctx context.Context, id string, index int) error {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(report.EvidenceBase64) {
		return ErrBadIndex
	}
	if len(report.EvidenceBase64) == 1 && len(report.EvidenceLinks) == 0 {
		return reports.ErrNoEvidence
	}

	err = s.reports.RemoveImage(ctx, id, index)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		// the images changed since they were read
		return ErrBadIndex
	}
	return err
}

// ModerateUpdate approves or rejects one reporter update
func (s *Service) ModerateUpdate(ctx context.Context, id, updateID, status string) error {
	if status != reports.StatusApproved && status != reports.StatusRejected {
		return ErrBadStatus
	}
	return s.reports.SetUpdateStatus(ctx, id, updateID, status)
}

// ListUsers returns user profiles newest first
func (s *Service) ListUsers(ctx context.Context, page, limit int) ([]auth.User, int64, error) {
	return s.users.ListUsers(ctx, page, limit)
}

// SetUserDisabled blocks or unblocks an account in the identity provider and
// in the profile store. The provider is updated first; a store failure rolls
// the provider back.
func (s *Service) SetUserDisabled(ctx context.Context, actor *auth.User, uid string, disabled bool) (*auth.User, error) {
	if actor == nil {
		return nil, pkgerrors.ErrForbidden
	}
	if actor.ID == uid {
		return nil, ErrSelfAction
	}
	user, err := s.user(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.SetDisabled(ctx, uid, disabled); err != nil {
		return nil, fmt.Errorf("identity provider: %w", err)
	}
	if err := s.users.SetDisabled(ctx, uid, disabled); err != nil {
		if rbErr := s.accounts.SetDisabled(ctx, uid, !disabled); rbErr != nil {
			s.log.Error("rollback disabled=%v for %s: %v", !disabled, uid, rbErr)
		}
		return nil, err
	}

	user.Disabled = disabled
	s.log.Info("user %s disabled=%v by %s", uid, disabled, actor.ID)
	return user, nil
}

// DeleteUser removes the profile and the identity provider account
func (s *Service) DeleteUser(ctx context.Context, actor *auth.User, uid string) error {
	if actor == nil {
		return pkgerrors.ErrForbidden
	}
	if actor.ID == uid {
		return ErrSelfAction
	}
	if _, err := s.user(ctx, uid); err != nil {
		return err
	}

	if err := s.users.DeleteUser(ctx, uid); err != nil {
		return err
	}
	if err := s.accounts.DeleteAccount(ctx, uid); err != nil {
		return fmt.Errorf("identity provider: %w", err)
	}
	s.log.Info("user %s deleted by %s", uid, actor.ID)
	return nil
}

func (s *Service) user(ctx context.Context, uid string) (*auth.User, error) {
	user, err := s.users.GetUserByID(ctx, uid)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// withoutIndices returns images minus the given positions
func withoutIndices(images []string, remove []int) ([]string, error) {
	if len(remove) == 0 {
		return images, nil
	}
	drop := make(map[int]bool, len(remove))
	for _, i := range remove {
		if i < 0 || i >= len(images) {
			return nil, ErrBadIndex
		}
		drop[i] = true
	}

	out := make([]string, 0, len(images)-len(drop))
	for i, img := range images {
		if !drop[i] {
			out = append(out, img)
		}
	}
	return out, nil
}
