package reports

import (
	"time"

	"github.com/xyz-asif/voiceup/internal/features/evidence"
	"github.com/xyz-asif/voiceup/internal/pkg/geo"
)

// Moderation states, shared by reports and reporter updates
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Categories is the fixed set of corruption categories
var Categories = []string{
	"সরকারি দুর্নীতি",
	"ঘুষ",
	"জমি দখল",
	"শিক্ষা খাতে দুর্নীতি",
	"স্বাস্থ্য খাতে দুর্নীতি",
	"পুলিশ দুর্নীতি",
	"আর্থিক জালিয়াতি",
	"ক্ষমতার অপব্যবহার",
	"অন্যান্য",
}

// IsCategory reports whether s is one of Categories
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// IsStatus reports whether s is a moderation state
func IsStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Location is where the reported incident happened
type Location struct {
	Lat     float64 `bson:"lat" json:"lat"`
	Lng     float64 `bson:"lng" json:"lng"`
	Address string  `bson:"address" json:"address"`
}

// Point returns the coordinates as a geo.Point
func (l Location) Point() geo.Point {
	return geo.Point{Lat: l.Lat, Lng: l.Lng}
}

// Tally is the three-counter vote summary of a report
type Tally struct {
	True         int `bson:"true" json:"true"`
	Suspicious   int `bson:"suspicious" json:"suspicious"`
	NeedEvidence int `bson:"needEvidence" json:"needEvidence"`
}

// Sum is the total number of votes
func (t Tally) Sum() int {
	return t.True + t.Suspicious + t.NeedEvidence
}

// UserUpdate is a follow-up note the reporter appends to a report
type UserUpdate struct {
	ID        string    `bson:"id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Report is a single citizen submission
type Report struct {
	ID             string       `bson:"_id" json:"id"`
	UserID         string       `bson:"userId" json:"userId"`
	Description    string       `bson:"description" json:"description"`
	CorruptionType string       `bson:"corruptionType" json:"corruptionType"`
	Location       *Location    `bson:"location,omitempty" json:"location,omitempty"`
	EvidenceBase64 []string     `bson:"evidenceBase64" json:"evidenceBase64"`
	EvidenceLinks  []string     `bson:"evidenceLinks" json:"evidenceLinks"`
	Status         string       `bson:"status" json:"status"`
	ActionTaken    string       `bson:"actionTaken,omitempty" json:"actionTaken,omitempty"`
	UserUpdates    []UserUpdate `bson:"userUpdates" json:"userUpdates"`
	Votes          Tally        `bson:"votes" json:"votes"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// IsOwnedBy checks if the report was submitted by the given user
func (r *Report) IsOwnedBy(userID string) bool {
	return r.UserID == userID
}

// Geolocated reports whether the report carries usable coordinates
func (r *Report) Geolocated() bool {
	return r.Location != nil
}

// CanBeViewed checks whether a viewer may read the report. Approved reports
// are public; everything else is visible to its owner and to admins.
func (r *Report) CanBeViewed(viewerID string, isAdmin bool) bool {
	if r.Status == StatusApproved {
		return true
	}
	return isAdmin || (viewerID != "" && r.IsOwnedBy(viewerID))
}

// VisibleUpdates returns the reporter updates a viewer may see
func (r *Report) VisibleUpdates(privileged bool) []UserUpdate {
	out := []UserUpdate{}
	for _, u := range r.UserUpdates {
		if privileged || u.Status == StatusApproved {
			out = append(out, u)
		}
	}
	return out
}

// Card is the compact feed representation of a report
type Card struct {
	*Report
	Gallery      evidence.Gallery `json:"gallery"`
	CommentCount int64            `json:"commentCount"`
	DistanceKm   *float64         `json:"distanceKm,omitempty"`
}

// Detail is the full representation of a report
type Detail struct {
	*Report
	Gallery      evidence.Gallery   `json:"gallery"`
	Segments     []evidence.Segment `json:"descriptionSegments"`
	UserUpdates  []UserUpdate       `json:"userUpdates"`
	CommentCount int64              `json:"commentCount"`
	MyVote       string             `json:"myVote,omitempty"`
}

// NewCard builds the card view of a report
func NewCard(r *Report, commentCount int64) Card {
	return Card{
		Report:       r,
		Gallery:      evidence.BuildGallery(r.EvidenceBase64, r.EvidenceLinks, evidence.ViewCard),
		CommentCount: commentCount,
	}
}

// SubmitRequest is the payload for a new report
type SubmitRequest struct {
	Description    string         `json:"description"`
	CorruptionType string         `json:"corruptionType"`
	EvidenceBase64 []string       `json:"evidenceBase64"`
	EvidenceLinks  []string       `json:"evidenceLinks"`
	Location       *LocationInput `json:"location"`
}

// LocationInput carries coordinates plus the optional address parts
type LocationInput struct {
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Address  string   `json:"address"`
	Village  string   `json:"village"`
	Thana    string   `json:"thana"`
	District string   `json:"district"`
}

// EditRequest is the owner edit payload. Omitted fields are left unchanged.
type EditRequest struct {
	Description    *string  `json:"description"`
	CorruptionType *string  `json:"corruptionType"`
	EvidenceBase64 []string `json:"evidenceBase64"`
	EvidenceLinks  []string `json:"evidenceLinks"`
}

// AddUpdateRequest is the payload for a reporter update
type AddUpdateRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}
