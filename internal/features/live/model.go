package live

import (
	"github.com/xyz-asif/voiceup/internal/features/comments"
	"github.com/xyz-asif/voiceup/internal/features/feed"
	"github.com/xyz-asif/voiceup/internal/features/reports"
)

// Message types pushed to clients
const (
	TypeFeed   = "feed"
	TypeReport = "report"
	TypeError  = "error"
)

// Message is the envelope of every pushed frame
type Message struct {
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// FeedRequest is sent by clients of /live/feed to change how the current
// snapshot is ranked
type FeedRequest struct {
	Mode     string   `json:"mode"`
	Category string   `json:"category"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Page     int      `json:"page"`
	Limit    int      `json:"limit"`
}

func (r FeedRequest) query() *feed.FeedQuery {
	return &feed.FeedQuery{
		Mode:     r.Mode,
		Category: r.Category,
		Lat:      r.Lat,
		Lng:      r.Lng,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

// ReportState is what /live/reports/:id pushes. Gone is set once the report
// is deleted or hidden from the viewer.
type ReportState struct {
	Report   *reports.Detail  `json:"report,omitempty"`
	Comments []comments.Entry `json:"comments"`
	Gone     bool             `json:"gone,omitempty"`
}
