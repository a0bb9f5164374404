package reports

import (
	"fmt"
	"time"

	"github.com/xyz-asif/voiceup/internal/pkg/geo"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

// reportDocument mirrors the stored shape with every field optional, so
// missing or mistyped data surfaces as an error instead of a zero value.
type reportDocument struct {
	ID             string            `bson:"_id"`
	UserID         *string           `bson:"userId"`
	Description    *string           `bson:"description"`
	CorruptionType *string           `bson:"corruptionType"`
	Location       *locationDocument `bson:"location"`
	EvidenceBase64 []string          `bson:"evidenceBase64"`
	EvidenceLinks  []string          `bson:"evidenceLinks"`
	Status         *string           `bson:"status"`
	ActionTaken    *string           `bson:"actionTaken"`
	UserUpdates    []userUpdateDoc   `bson:"userUpdates"`
	Votes          *tallyDocument    `bson:"votes"`
	CreatedAt      *time.Time        `bson:"createdAt"`
	UpdatedAt      *time.Time        `bson:"updatedAt"`
}

type locationDocument struct {
	Lat     *float64 `bson:"lat"`
	Lng     *float64 `bson:"lng"`
	Address *string  `bson:"address"`
}

type tallyDocument struct {
	True         *int `bson:"true"`
	Suspicious   *int `bson:"suspicious"`
	NeedEvidence *int `bson:"needEvidence"`
}

type userUpdateDoc struct {
	ID        *string    `bson:"id"`
	Text      *string    `bson:"text"`
	Status    *string    `bson:"status"`
	CreatedAt *time.Time `bson:"createdAt"`
}

func malformed(id, format string, args ...interface{}) error {
	return fmt.Errorf("%w: report %s: %s", pkgerrors.ErrMalformedDocument, id, fmt.Sprintf(format, args...))
}

// toReport validates the raw document and converts it to a Report
func (d *reportDocument) toReport() (*Report, error) {
	if d.ID == "" {
		return nil, malformed("?", "missing id")
	}
	switch {
	case d.UserID == nil || *d.UserID == "":
		return nil, malformed(d.ID, "missing userId")
	case d.Description == nil:
		return nil, malformed(d.ID, "missing description")
	case d.CorruptionType == nil:
		return nil, malformed(d.ID, "missing corruptionType")
	case d.Status == nil || !IsStatus(*d.Status):
		return nil, malformed(d.ID, "invalid status")
	case d.CreatedAt == nil:
		return nil, malformed(d.ID, "missing createdAt")
	}

	r := &Report{
		ID:             d.ID,
		UserID:         *d.UserID,
		Description:    *d.Description,
		CorruptionType: *d.CorruptionType,
		Status:         *d.Status,
		EvidenceBase64: nonNil(d.EvidenceBase64),
		EvidenceLinks:  nonNil(d.EvidenceLinks),
		UserUpdates:    []UserUpdate{},
		CreatedAt:      *d.CreatedAt,
		UpdatedAt:      *d.CreatedAt,
	}
	if d.UpdatedAt != nil {
		r.UpdatedAt = *d.UpdatedAt
	}
	if d.ActionTaken != nil {
		r.ActionTaken = *d.ActionTaken
	}

	if loc := d.Location; loc != nil && loc.Lat != nil && loc.Lng != nil {
		p := geo.Point{Lat: *loc.Lat, Lng: *loc.Lng}
		if !p.Valid() {
			return nil, malformed(d.ID, "coordinates out of range")
		}
		r.Location = &Location{Lat: p.Lat, Lng: p.Lng}
		if loc.Address != nil {
			r.Location.Address = *loc.Address
		}
	}

	if v := d.Votes; v != nil {
		var err error
		if r.Votes.True, err = counter(d.ID, "true", v.True); err != nil {
			return nil, err
		}
		if r.Votes.Suspicious, err = counter(d.ID, "suspicious", v.Suspicious); err != nil {
			return nil, err
		}
		if r.Votes.NeedEvidence, err = counter(d.ID, "needEvidence", v.NeedEvidence); err != nil {
			return nil, err
		}
	}

	for i, u := range d.UserUpdates {
		if u.ID == nil || u.Text == nil || u.Status == nil || !IsStatus(*u.Status) {
			return nil, malformed(d.ID, "invalid user update at %d", i)
		}
		upd := UserUpdate{ID: *u.ID, Text: *u.Text, Status: *u.Status}
		if u.CreatedAt != nil {
			upd.CreatedAt = *u.CreatedAt
		}
		r.UserUpdates = append(r.UserUpdates, upd)
	}

	return r, nil
}

func counter(id, name string, v *int) (int, error) {
	if v == nil {
		return 0, nil
	}
	if *v < 0 {
		return 0, malformed(id, "negative %s counter", name)
	}
	return *v, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
