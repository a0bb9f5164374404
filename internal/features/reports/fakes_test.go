package reports

import (
	"context"
	"sort"
	"sync"
	"time"

	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeStore struct {
	mu      sync.Mutex
	reports map[string]*Report
	seq     int
	updates []bson.M
}

func newFakeStore(rs ...*Report) *fakeStore {
	f := &fakeStore{reports: map[string]*Report{}}
	for _, r := range rs {
		f.reports[r.ID] = r
	}
	return f
}

func (f *fakeStore) Create(_ context.Context, r *Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	r.ID = "gen" + string(rune('0'+f.seq))
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	f.reports[r.ID] = &cp
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID, status string, page, limit int) ([]Report, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Report
	for _, r := range f.reports {
		if r.UserID == userID && (status == "" || r.Status == status) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (f *fakeStore) Update(_ context.Context, id string, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[id]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	f.updates = append(f.updates, fields)
	if v, ok := fields["status"].(string); ok {
		r.Status = v
	}
	if v, ok := fields["description"].(string); ok {
		r.Description = v
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reports[id]; !ok {
		return pkgerrors.ErrNotFound
	}
	delete(f.reports, id)
	return nil
}

func (f *fakeStore) AppendUpdate(_ context.Context, id string, u UserUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[id]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	r.UserUpdates = append(r.UserUpdates, u)
	return nil
}

type fakeCounter map[string]int64

func (f fakeCounter) CountByReports(_ context.Context, ids []string) (map[string]int64, error) {
	out := map[string]int64{}
	for _, id := range ids {
		if n, ok := f[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type fakeVotes map[string]string

func (f fakeVotes) GetUserVote(_ context.Context, reportID, userID string) (string, error) {
	return f[reportID+"_"+userID], nil
}
