package feed

import (
	"errors"
	"strings"

	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/geo"
)

var ErrUnknownCategory = errors.New("unknown category")

// ValidateFeedQuery normalizes the query and converts it into ranking options
func ValidateFeedQuery(query *FeedQuery) (Options, error) {
	opts := Options{
		Mode:     Mode(strings.ToLower(strings.TrimSpace(query.Mode))),
		Category: strings.TrimSpace(query.Category),
	}
	if opts.Mode == "" {
		opts.Mode = ModeLatest
	}
	if opts.Mode != ModeLatest && opts.Mode != ModeTrending && opts.Mode != ModeNearby {
		return opts, ErrUnknownMode
	}
	if opts.Category == "" {
		opts.Category = CategoryAll
	}
	if opts.Category != CategoryAll && !reports.IsCategory(opts.Category) {
		return opts, ErrUnknownCategory
	}

	if query.Lat != nil && query.Lng != nil {
		p := geo.Point{Lat: *query.Lat, Lng: *query.Lng}
		if !p.Valid() {
			return opts, errors.New("coordinates out of range")
		}
		opts.Viewer = &p
	}
	if opts.Mode == ModeNearby && opts.Viewer == nil {
		return opts, ErrViewerLocationRequired
	}
	return opts, nil
}
