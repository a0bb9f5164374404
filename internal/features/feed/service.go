package feed

import (
	"context"

	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/pagination"
)

// ApprovedLister loads the approved reports, newest first
type ApprovedLister interface {
	ListApproved(ctx context.Context) ([]reports.Report, error)
}

// CommentCounter returns comment totals per report
type CommentCounter interface {
	CommentCounts(ctx context.Context, ids []string) map[string]int64
}

// Service assembles the ranked feed
type Service struct {
	source  ApprovedLister
	counter CommentCounter
}

// NewService creates a new feed service
func NewService(source ApprovedLister, counter CommentCounter) *Service {
	return &Service{source: source, counter: counter}
}

// Feed fetches approved reports, ranks them and returns one page of cards
func (s *Service) Feed(ctx context.Context, opts Options, page, limit int) (*FeedResponse, error) {
	items, err := s.source.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	return s.Page(ctx, items, opts, page, limit)
}

// Page ranks an already loaded snapshot. Pagination happens after ranking
// so that trending and nearby order span the whole set.
func (s *Service) Page(ctx context.Context, items []reports.Report, opts Options, page, limit int) (*FeedResponse, error) {
	ranked, err := Rank(items, opts)
	if err != nil {
		return nil, err
	}

	window, p := pagination.Slice(ranked, page, limit)

	ids := make([]string, len(window))
	for i, r := range window {
		ids[i] = r.Report.ID
	}
	counts := map[string]int64{}
	if s.counter != nil && len(ids) > 0 {
		counts = s.counter.CommentCounts(ctx, ids)
	}

	cards := make([]reports.Card, len(window))
	for i, r := range window {
		cards[i] = reports.NewCard(r.Report, counts[r.Report.ID])
		cards[i].DistanceKm = r.DistanceKm
	}

	return &FeedResponse{
		Items:      cards,
		Pagination: p,
		Mode:       opts.Mode,
		Category:   opts.Category,
	}, nil
}
