package feed

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/geo"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func report(id, category string, minutes int, votes reports.Tally, loc *reports.Location) reports.Report {
	return reports.Report{
		ID:             id,
		CorruptionType: category,
		Status:         reports.StatusApproved,
		CreatedAt:      base.Add(time.Duration(minutes) * time.Minute),
		Votes:          votes,
		Location:       loc,
	}
}

func at(lat, lng float64) *reports.Location {
	return &reports.Location{Lat: lat, Lng: lng}
}

func ids(ranked []Ranked) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Report.ID
	}
	return out
}

var dhaka = geo.Point{Lat: 23.8103, Lng: 90.4125}

func TestRank_Latest_StableDescending(t *testing.T) {
	items := []reports.Report{
		report("a", "ঘুষ", 1, reports.Tally{}, nil),
		report("b", "ঘুষ", 5, reports.Tally{}, nil),
		report("c", "ঘুষ", 1, reports.Tally{}, nil),
		report("d", "ঘুষ", 5, reports.Tally{}, nil),
		report("e", "ঘুষ", 3, reports.Tally{}, nil),
	}
	ranked, err := Rank(items, Options{Mode: ModeLatest})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "d", "e", "a", "c"}, ids(ranked))
}

func TestRank_Trending(t *testing.T) {
	items := []reports.Report{
		report("zero", "ঘুষ", 9, reports.Tally{}, nil),
		report("one", "ঘুষ", 1, reports.Tally{Suspicious: 1}, nil),
		report("five", "ঘুষ", 2, reports.Tally{True: 2, Suspicious: 1, NeedEvidence: 2}, nil),
		report("one-b", "ঘুষ", 3, reports.Tally{NeedEvidence: 1}, nil),
	}
	ranked, err := Rank(items, Options{Mode: ModeTrending})
	require.NoError(t, err)
	require.Equal(t, []string{"five", "one", "one-b", "zero"}, ids(ranked))

	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].Report.Votes.Sum(), ranked[i].Report.Votes.Sum())
	}
}

func TestRank_Nearby(t *testing.T) {
	items := []reports.Report{
		report("far", "ঘুষ", 0, reports.Tally{}, at(22.3569, 91.7832)), // Chittagong, ~214 km
		report("none", "ঘুষ", 0, reports.Tally{}, nil),
		report("mid", "ঘুষ", 0, reports.Tally{}, at(23.8103+0.3, 90.4125)),
		report("here", "ঘুষ", 0, reports.Tally{}, at(23.8103, 90.4125)),
		report("edge", "ঘুষ", 0, reports.Tally{}, at(23.8103+0.5, 90.4125)), // ~55.6 km
		report("close", "ঘুষ", 0, reports.Tally{}, at(23.8103+0.1, 90.4125)),
	}
	ranked, err := Rank(items, Options{Mode: ModeNearby, Viewer: &dhaka})
	require.NoError(t, err)
	require.Equal(t, []string{"here", "close", "mid"}, ids(ranked))

	for i, r := range ranked {
		require.NotNil(t, r.DistanceKm)
		require.LessOrEqual(t, *r.DistanceKm, NearbyRadiusKm)
		if i > 0 {
			require.LessOrEqual(t, *ranked[i-1].DistanceKm, *r.DistanceKm)
		}
	}
	require.Equal(t, 0.0, *ranked[0].DistanceKm)
}

func TestRank_NearbyRadiusIsInclusive(t *testing.T) {
	require.True(t, withinRadius(NearbyRadiusKm))
	require.False(t, withinRadius(math.Nextafter(NearbyRadiusKm, math.Inf(1))))

	// one degree of latitude is ~111.195 km
	items := []reports.Report{
		report("inside", "ঘুষ", 0, reports.Tally{}, at(23.8103+0.4487, 90.4125)),  // ~49.89 km
		report("outside", "ঘুষ", 0, reports.Tally{}, at(23.8103+0.4507, 90.4125)), // ~50.12 km
	}
	ranked, err := Rank(items, Options{Mode: ModeNearby, Viewer: &dhaka})
	require.NoError(t, err)
	require.Equal(t, []string{"inside"}, ids(ranked))
}

func TestRank_NearbyRequiresViewer(t *testing.T) {
	_, err := Rank(nil, Options{Mode: ModeNearby})
	require.ErrorIs(t, err, ErrViewerLocationRequired)
}

func TestRank_UnknownMode(t *testing.T) {
	_, err := Rank(nil, Options{Mode: "random"})
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestRank_CategoryFilter(t *testing.T) {
	items := []reports.Report{
		report("a", "ঘুষ", 1, reports.Tally{}, nil),
		report("b", "জমি দখল", 2, reports.Tally{}, nil),
		report("c", "ঘুষ", 3, reports.Tally{}, nil),
	}

	ranked, err := Rank(items, Options{Mode: ModeLatest, Category: "পুলিশ দুর্নীতি"})
	require.NoError(t, err)
	require.Empty(t, ranked)

	ranked, err = Rank(items, Options{Mode: ModeLatest, Category: "ঘুষ"})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a"}, ids(ranked))

	all, err := Rank(items, Options{Mode: ModeLatest, Category: CategoryAll})
	require.NoError(t, err)
	none, err := Rank(items, Options{Mode: ModeLatest})
	require.NoError(t, err)
	require.Equal(t, ids(none), ids(all))
	require.Len(t, all, 3)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := make([]reports.Report, 50)
	for i := range items {
		items[i] = report(string(rune('A'+i)), reports.Categories[rng.Intn(3)], rng.Intn(10),
			reports.Tally{True: rng.Intn(4)}, at(23.8+rng.Float64()*0.8, 90.4))
	}
	snapshot := make([]reports.Report, len(items))
	copy(snapshot, items)

	for _, mode := range []Mode{ModeLatest, ModeTrending, ModeNearby} {
		_, err := Rank(items, Options{Mode: mode, Viewer: &dhaka})
		require.NoError(t, err)
		require.Equal(t, snapshot, items)
	}
}

type staticSource []reports.Report

func (s staticSource) ListApproved(context.Context) ([]reports.Report, error) { return s, nil }

type countAll int64

func (c countAll) CommentCounts(_ context.Context, ids []string) map[string]int64 {
	out := map[string]int64{}
	for _, id := range ids {
		out[id] = int64(c)
	}
	return out
}

func TestService_PaginatesAfterRanking(t *testing.T) {
	items := staticSource{
		report("old-hot", "ঘুষ", 0, reports.Tally{True: 9}, nil),
		report("new-cold", "ঘুষ", 9, reports.Tally{}, nil),
		report("mid-warm", "ঘুষ", 5, reports.Tally{True: 3}, nil),
	}
	svc := NewService(items, countAll(2))

	page, err := svc.Feed(context.Background(), Options{Mode: ModeTrending}, 1, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, "old-hot", page.Items[0].ID)
	require.Equal(t, "mid-warm", page.Items[1].ID)
	require.Equal(t, int64(2), page.Items[0].CommentCount)
	require.True(t, page.Pagination.HasNext)

	page, err = svc.Feed(context.Background(), Options{Mode: ModeTrending}, 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "new-cold", page.Items[0].ID)
}
