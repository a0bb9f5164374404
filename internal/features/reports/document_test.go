package reports

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

func ptr[T any](v T) *T { return &v }

func validDoc() reportDocument {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return reportDocument{
		ID:             "r1",
		UserID:         ptr("u1"),
		Description:    ptr("ঘুষ চাওয়া হয়েছে"),
		CorruptionType: ptr("ঘুষ"),
		Status:         ptr(StatusApproved),
		CreatedAt:      &created,
		Location:       &locationDocument{Lat: ptr(23.8), Lng: ptr(90.4), Address: ptr("Dhaka")},
		Votes:          &tallyDocument{True: ptr(2), Suspicious: ptr(1)},
	}
}

func TestToReport_Valid(t *testing.T) {
	d := validDoc()
	r, err := d.toReport()
	require.NoError(t, err)
	require.Equal(t, "r1", r.ID)
	require.True(t, r.Geolocated())
	require.Equal(t, "Dhaka", r.Location.Address)
	require.Equal(t, Tally{True: 2, Suspicious: 1}, r.Votes)
	require.Equal(t, 3, r.Votes.Sum())
	require.NotNil(t, r.EvidenceBase64)
	require.NotNil(t, r.EvidenceLinks)
	require.Equal(t, r.CreatedAt, r.UpdatedAt)
}

func TestToReport_FailsClosed(t *testing.T) {
	cases := map[string]func(d *reportDocument){
		"missing user":        func(d *reportDocument) { d.UserID = nil },
		"missing description": func(d *reportDocument) { d.Description = nil },
		"missing category":    func(d *reportDocument) { d.CorruptionType = nil },
		"bad status":          func(d *reportDocument) { d.Status = ptr("archived") },
		"missing createdAt":   func(d *reportDocument) { d.CreatedAt = nil },
		"negative counter":    func(d *reportDocument) { d.Votes.True = ptr(-1) },
		"bad coordinates":     func(d *reportDocument) { d.Location.Lat = ptr(123.0) },
		"bad update": func(d *reportDocument) {
			d.UserUpdates = []userUpdateDoc{{ID: ptr("x"), Text: ptr("t")}}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := validDoc()
			mutate(&d)
			_, err := d.toReport()
			require.True(t, errors.Is(err, pkgerrors.ErrMalformedDocument), "got %v", err)
		})
	}
}

func TestToReport_PartialLocationIsNotGeolocated(t *testing.T) {
	d := validDoc()
	d.Location.Lng = nil
	r, err := d.toReport()
	require.NoError(t, err)
	require.False(t, r.Geolocated())
}

func TestToReport_DecodesStoredShape(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{
		"_id":            "r2",
		"userId":         "u2",
		"description":    "text",
		"corruptionType": "জমি দখল",
		"status":         "pending",
		"createdAt":      created,
		"votes":          bson.M{"true": int32(1), "suspicious": int64(0), "needEvidence": 4.0},
		"userUpdates": bson.A{
			bson.M{"id": "up1", "text": "more", "status": "approved", "createdAt": created},
		},
	})
	require.NoError(t, err)

	var d reportDocument
	require.NoError(t, bson.Unmarshal(raw, &d))
	r, err := d.toReport()
	require.NoError(t, err)
	require.Equal(t, Tally{True: 1, NeedEvidence: 4}, r.Votes)
	require.False(t, r.Geolocated())
	require.Len(t, r.UserUpdates, 1)
}
