package feed

import (
	"errors"
	"sort"

	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/geo"
)

var (
	ErrViewerLocationRequired = errors.New("nearby mode requires the viewer's location")
	ErrUnknownMode            = errors.New("mode must be latest, trending or nearby")
)

// Rank filters by category and orders reports for the feed. The input
// slice and the reports it holds are never modified.
func Rank(items []reports.Report, opts Options) ([]Ranked, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeLatest
	}
	if mode == ModeNearby && opts.Viewer == nil {
		return nil, ErrViewerLocationRequired
	}
	if mode != ModeLatest && mode != ModeTrending && mode != ModeNearby {
		return nil, ErrUnknownMode
	}

	ranked := make([]Ranked, 0, len(items))
	for i := range items {
		r := &items[i]
		if !matchesCategory(r, opts.Category) {
			continue
		}
		entry := Ranked{Report: r}
		if mode == ModeNearby {
			if !r.Geolocated() {
				continue
			}
			d := geo.Distance(*opts.Viewer, r.Location.Point())
			if !withinRadius(d) {
				continue
			}
			entry.DistanceKm = &d
		}
		ranked = append(ranked, entry)
	}

	switch mode {
	case ModeLatest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Report.CreatedAt.After(ranked[j].Report.CreatedAt)
		})
	case ModeTrending:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Report.Votes.Sum() > ranked[j].Report.Votes.Sum()
		})
	case ModeNearby:
		sort.SliceStable(ranked, func(i, j int) bool {
			return *ranked[i].DistanceKm < *ranked[j].DistanceKm
		})
	}
	return ranked, nil
}

// withinRadius keeps reports at exactly NearbyRadiusKm
func withinRadius(d float64) bool {
	return d <= NearbyRadiusKm
}

func matchesCategory(r *reports.Report, category string) bool {
	return category == "" || category == CategoryAll || r.CorruptionType == category
}
