package votes

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/xyz-asif/voiceup/internal/features/reports"
)

// Vote types. They double as the field names of a report's tally.
const (
	TypeTrue         = "true"
	TypeSuspicious   = "suspicious"
	TypeNeedEvidence = "needEvidence"
)

// IsType reports whether s is a known vote type
func IsType(s string) bool {
	switch s {
	case TypeTrue, TypeSuspicious, TypeNeedEvidence:
		return true
	}
	return false
}

// tagVoteType is the binding tag that accepts only known vote types
const tagVoteType = "votetype"

// BindingTags are the custom binding validations of this feature
var BindingTags = map[string]playground.Func{
	tagVoteType: func(fl playground.FieldLevel) bool {
		return IsType(fl.Field().String())
	},
}

// Vote is one user's opinion on one report. At most one exists per pair.
type Vote struct {
	ID       string `bson:"_id" json:"id"`
	ReportID string `bson:"reportId" json:"reportId"`
	UserID   string `bson:"userId" json:"userId"`
	Type     string `bson:"type" json:"type"`
}

// ID derives the document id of a vote
func ID(reportID, userID string) string {
	return reportID + "_" + userID
}

// Action describes what a cast did to the caller's vote
type Action string

const (
	ActionAdded   Action = "added"
	ActionChanged Action = "changed"
	ActionRemoved Action = "removed"
)

// CastRequest for POST /reports/:id/vote
type CastRequest struct {
	Type string `json:"type" binding:"required,votetype"`
}

// VoteResponse is returned by every vote endpoint
type VoteResponse struct {
	MyVote string        `json:"myVote"`
	Action Action        `json:"action,omitempty"`
	Votes  reports.Tally `json:"votes"`
}
