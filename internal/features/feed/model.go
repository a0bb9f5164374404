package feed

import (
	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/geo"
	"github.com/xyz-asif/voiceup/internal/pkg/pagination"
)

// Mode selects how the feed is ordered
type Mode string

const (
	ModeLatest   Mode = "latest"
	ModeTrending Mode = "trending"
	ModeNearby   Mode = "nearby"
)

// CategoryAll disables the category filter
const CategoryAll = "all"

// NearbyRadiusKm is the cut-off distance for nearby mode
const NearbyRadiusKm = 50.0

// Options are the viewer's ranking choices
type Options struct {
	Mode     Mode       `json:"mode"`
	Category string     `json:"category"`
	Viewer   *geo.Point `json:"viewer,omitempty"`
}

// Ranked is one report in ranked order
type Ranked struct {
	Report     *reports.Report
	DistanceKm *float64
}

// FeedQuery represents the query parameters of the feed endpoint
type FeedQuery struct {
	Mode     string   `form:"mode"`
	Category string   `form:"category"`
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
}

// FeedResponse is a page of ranked report cards
type FeedResponse struct {
	Items      []reports.Card         `json:"items"`
	Pagination *pagination.Pagination `json:"pagination"`
	Mode       Mode                   `json:"mode"`
	Category   string                 `json:"category"`
}
