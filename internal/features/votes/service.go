package votes

import (
	"context"
	"errors"
	"fmt"

	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

// Store is the persistence the service needs
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	Get(ctx context.Context, reportID, userID string) (*Vote, error)
	Put(ctx context.Context, vote *Vote) error
	Delete(ctx context.Context, reportID, userID string) error
	Adjust(ctx context.Context, reportID, voteType string, delta int) error
	Tally(ctx context.Context, reportID string) (reports.Tally, error)
}

// ReportFinder loads the report a vote targets
type ReportFinder interface {
	GetByID(ctx context.Context, id string) (*reports.Report, error)
}

var ErrUnknownType = fmt.Errorf("%w: vote type must be true, suspicious or needEvidence", pkgerrors.ErrValidation)

// Service keeps votes and report tallies consistent
type Service struct {
	store   Store
	reports ReportFinder
	log     *logger.Logger
}

// NewService creates a new vote service
func NewService(store Store, finder ReportFinder) *Service {
	return &Service{
		store:   store,
		reports: finder,
		log:     logger.Default().With("votes"),
	}
}

// Cast records the viewer's vote. Casting the current type again retracts
// it; casting another type swaps. Vote and tally change in one transaction.
func (s *Service) Cast(ctx context.Context, viewer reports.Viewer, reportID, voteType string) (*VoteResponse, error) {
	if !IsType(voteType) {
		return nil, ErrUnknownType
	}
	if _, err := s.visibleReport(ctx, viewer, reportID); err != nil {
		return nil, err
	}

	out := &VoteResponse{}
	err := s.store.RunInTx(ctx, func(tx context.Context) error {
		existing, err := s.current(tx, reportID, viewer.ID)
		if err != nil {
			return err
		}

		switch {
		case existing != nil && existing.Type == voteType:
			if err := s.store.Delete(tx, reportID, viewer.ID); err != nil {
				return err
			}
			out.MyVote, out.Action = "", ActionRemoved
			return s.store.Adjust(tx, reportID, existing.Type, -1)

		case existing != nil:
			if err := s.store.Adjust(tx, reportID, existing.Type, -1); err != nil {
				return err
			}
			out.Action = ActionChanged

		default:
			out.Action = ActionAdded
		}

		vote := &Vote{ReportID: reportID, UserID: viewer.ID, Type: voteType}
		if err := s.store.Put(tx, vote); err != nil {
			return err
		}
		out.MyVote = voteType
		return s.store.Adjust(tx, reportID, voteType, 1)
	})
	if err != nil {
		return nil, fmt.Errorf("cast vote: %w", err)
	}

	out.Votes = s.tally(ctx, reportID)
	return out, nil
}

// Retract removes the viewer's vote, if any
func (s *Service) Retract(ctx context.Context, viewer reports.Viewer, reportID string) (*VoteResponse, error) {
	if _, err := s.visibleReport(ctx, viewer, reportID); err != nil {
		return nil, err
	}

	out := &VoteResponse{}
	err := s.store.RunInTx(ctx, func(tx context.Context) error {
		existing, err := s.current(tx, reportID, viewer.ID)
		if err != nil || existing == nil {
			return err
		}
		if err := s.store.Delete(tx, reportID, viewer.ID); err != nil {
			return err
		}
		out.Action = ActionRemoved
		return s.store.Adjust(tx, reportID, existing.Type, -1)
	})
	if err != nil {
		return nil, fmt.Errorf("retract vote: %w", err)
	}

	out.Votes = s.tally(ctx, reportID)
	return out, nil
}

// Mine returns the viewer's vote together with the report's tally
func (s *Service) Mine(ctx context.Context, viewer reports.Viewer, reportID string) (*VoteResponse, error) {
	report, err := s.visibleReport(ctx, viewer, reportID)
	if err != nil {
		return nil, err
	}
	mine, err := s.GetUserVote(ctx, reportID, viewer.ID)
	if err != nil {
		return nil, err
	}
	return &VoteResponse{MyVote: mine, Votes: report.Votes}, nil
}

// GetUserVote returns the vote type the user cast on the report, or ""
func (s *Service) GetUserVote(ctx context.Context, reportID, userID string) (string, error) {
	vote, err := s.current(ctx, reportID, userID)
	if err != nil || vote == nil {
		return "", err
	}
	return vote.Type, nil
}

// current loads the stored vote. A malformed vote is treated as absent; the
// next Put overwrites it.
func (s *Service) current(ctx context.Context, reportID, userID string) (*Vote, error) {
	vote, err := s.store.Get(ctx, reportID, userID)
	if errors.Is(err, pkgerrors.ErrMalformedDocument) {
		s.log.Warn("ignoring vote: %v", err)
		return nil, nil
	}
	return vote, err
}

func (s *Service) visibleReport(ctx context.Context, viewer reports.Viewer, reportID string) (*reports.Report, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !report.CanBeViewed(viewer.ID, viewer.Admin) {
		return nil, pkgerrors.ErrNotFound
	}
	return report, nil
}

func (s *Service) tally(ctx context.Context, reportID string) reports.Tally {
	t, err := s.store.Tally(ctx, reportID)
	if err != nil {
		s.log.Warn("read tally of %s: %v", reportID, err)
	}
	return t
}
