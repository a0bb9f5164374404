package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

type memReports struct {
	items map[string]*reports.Report
}

func (m *memReports) GetByID(_ context.Context, id string) (*reports.Report, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	cp := *r
	if r.Location != nil {
		loc := *r.Location
		cp.Location = &loc
	}
	return &cp, nil
}

func (m *memReports) List(_ context.Context, status string, _, _ int) ([]reports.Report, int64, error) {
	var out []reports.Report
	for _, r := range m.items {
		if status == "" || r.Status == status {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memReports) Update(_ context.Context, id string, fields bson.M) error {
	r, ok := m.items[id]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			r.Status = v.(string)
		case "description":
			r.Description = v.(string)
		case "corruptionType":
			r.CorruptionType = v.(string)
		case "evidenceLinks":
			r.EvidenceLinks = v.([]string)
		case "evidenceBase64":
			r.EvidenceBase64 = v.([]string)
		case "actionTaken":
			r.ActionTaken = v.(string)
		case "location.address":
			r.Location.Address = v.(string)
		default:
			if strings.Contains(k, ".") {
				return errors.New("unexpected path " + k)
			}
		}
	}
	return nil
}

func (m *memReports) RemoveImage(_ context.Context, id string, index int) error {
	r, ok := m.items[id]
	if !ok || index < 0 || index >= len(r.EvidenceBase64) {
		return pkgerrors.ErrNotFound
	}
	r.EvidenceBase64 = append(r.EvidenceBase64[:index:index], r.EvidenceBase64[index+1:]...)
	return nil
}

func (m *memReports) SetUpdateStatus(_ context.Context, id, updateID, status string) error {
	r, ok := m.items[id]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	for i := range r.UserUpdates {
		if r.UserUpdates[i].ID == updateID {
			r.UserUpdates[i].Status = status
			return nil
		}
	}
	return pkgerrors.ErrNotFound
}

type plainCards struct{}

func (plainCards) Cards(_ context.Context, items []reports.Report) []reports.Card {
	out := make([]reports.Card, len(items))
	for i := range items {
		out[i] = reports.NewCard(&items[i], 0)
	}
	return out
}

type memUsers struct {
	items   map[string]*auth.User
	failSet bool
}

func (m *memUsers) GetUserByID(_ context.Context, uid string) (*auth.User, error) {
	u, ok := m.items[uid]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) ListUsers(_ context.Context, _, _ int) ([]auth.User, int64, error) {
	var out []auth.User
	for _, u := range m.items {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (m *memUsers) SetDisabled(_ context.Context, uid string, disabled bool) error {
	if m.failSet {
		return errors.New("store down")
	}
	u, ok := m.items[uid]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	u.Disabled = disabled
	return nil
}

func (m *memUsers) DeleteUser(_ context.Context, uid string) error {
	if _, ok := m.items[uid]; !ok {
		return pkgerrors.ErrNotFound
	}
	delete(m.items, uid)
	return nil
}

// fakeAccounts records what was mirrored into the identity provider
type fakeAccounts struct {
	disabled map[string]bool
	deleted  []string
	calls    int
}

func (f *fakeAccounts) SetDisabled(_ context.Context, uid string, disabled bool) error {
	f.calls++
	f.disabled[uid] = disabled
	return nil
}

func (f *fakeAccounts) DeleteAccount(_ context.Context, uid string) error {
	f.calls++
	f.deleted = append(f.deleted, uid)
	return nil
}

var (
	adminUser = &auth.User{ID: "boss", Role: auth.RoleAdmin}
	plainUser = &auth.User{ID: "joe", Role: auth.RoleUser}
)

func newFixture() (*Service, *memReports, *memUsers, *fakeAccounts) {
	rs := &memReports{items: map[string]*reports.Report{
		"r1": {
			ID: "r1", UserID: "joe", Description: "old", CorruptionType: reports.Categories[0],
			Location:       &reports.Location{Lat: 23.8, Lng: 90.4, Address: "Dhaka"},
			EvidenceBase64: []string{"img0", "img1", "img2"},
			Status:         reports.StatusPending,
			UserUpdates:    []reports.UserUpdate{{ID: "u1", Text: "later", Status: reports.StatusPending}},
		},
		"links-only": {
			ID: "links-only", UserID: "joe", Description: "d", CorruptionType: reports.Categories[0],
			EvidenceLinks: []string{"https://example.com"}, Status: reports.StatusApproved,
		},
	}}
	users := &memUsers{items: map[string]*auth.User{
		"boss": {ID: "boss", Role: auth.RoleAdmin},
		"joe":  {ID: "joe", Role: auth.RoleUser},
	}}
	accounts := &fakeAccounts{disabled: map[string]bool{}}
	return NewService(rs, plainCards{}, users, accounts), rs, users, accounts
}
