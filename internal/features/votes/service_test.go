package votes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

// memStore keeps votes and tallies in memory. RunInTx restores the snapshot
// taken on entry when fn fails.
type memStore struct {
	votes   map[string]Vote
	tallies map[string]*reports.Tally
	failPut bool
	txs     int
}

func newMemStore(reportIDs ...string) *memStore {
	m := &memStore{votes: map[string]Vote{}, tallies: map[string]*reports.Tally{}}
	for _, id := range reportIDs {
		m.tallies[id] = &reports.Tally{}
	}
	return m
}

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txs++
	votes := map[string]Vote{}
	for k, v := range m.votes {
		votes[k] = v
	}
	tallies := map[string]reports.Tally{}
	for k, v := range m.tallies {
		tallies[k] = *v
	}

	if err := fn(ctx); err != nil {
		m.votes = votes
		for k, v := range tallies {
			t := v
			m.tallies[k] = &t
		}
		return err
	}
	return nil
}

func (m *memStore) Get(_ context.Context, reportID, userID string) (*Vote, error) {
	v, ok := m.votes[ID(reportID, userID)]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m *memStore) Put(_ context.Context, vote *Vote) error {
	if m.failPut {
		return errors.New("write conflict")
	}
	vote.ID = ID(vote.ReportID, vote.UserID)
	m.votes[vote.ID] = *vote
	return nil
}

func (m *memStore) Delete(_ context.Context, reportID, userID string) error {
	delete(m.votes, ID(reportID, userID))
	return nil
}

func (m *memStore) Adjust(_ context.Context, reportID, voteType string, delta int) error {
	t, ok := m.tallies[reportID]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	var field *int
	switch voteType {
	case TypeTrue:
		field = &t.True
	case TypeSuspicious:
		field = &t.Suspicious
	case TypeNeedEvidence:
		field = &t.NeedEvidence
	}
	if *field+delta >= 0 {
		*field += delta
	}
	return nil
}

func (m *memStore) Tally(_ context.Context, reportID string) (reports.Tally, error) {
	t, ok := m.tallies[reportID]
	if !ok {
		return reports.Tally{}, pkgerrors.ErrNotFound
	}
	return *t, nil
}

type finder map[string]*reports.Report

func (f finder) GetByID(_ context.Context, id string) (*reports.Report, error) {
	r, ok := f[id]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	return r, nil
}

func setup() (*Service, *memStore) {
	store := newMemStore("r1", "pending")
	f := finder{
		"r1":      {ID: "r1", UserID: "owner", Status: reports.StatusApproved, CreatedAt: time.Now()},
		"pending": {ID: "pending", UserID: "owner", Status: reports.StatusPending, CreatedAt: time.Now()},
	}
	return NewService(store, f), store
}

var alice = reports.Viewer{ID: "alice"}

func TestCast_AddSwapToggle(t *testing.T) {
	svc, store := setup()
	ctx := context.Background()

	out, err := svc.Cast(ctx, alice, "r1", TypeTrue)
	require.NoError(t, err)
	require.Equal(t, ActionAdded, out.Action)
	require.Equal(t, TypeTrue, out.MyVote)
	require.Equal(t, reports.Tally{True: 1}, out.Votes)

	out, err = svc.Cast(ctx, alice, "r1", TypeSuspicious)
	require.NoError(t, err)
	require.Equal(t, ActionChanged, out.Action)
	require.Equal(t, reports.Tally{Suspicious: 1}, out.Votes)
	require.Len(t, store.votes, 1)

	out, err = svc.Cast(ctx, alice, "r1", TypeSuspicious)
	require.NoError(t, err)
	require.Equal(t, ActionRemoved, out.Action)
	require.Equal(t, "", out.MyVote)
	require.Equal(t, reports.Tally{}, out.Votes)
	require.Empty(t, store.votes)

	require.Equal(t, 3, store.txs)
}

func TestCast_TallyMatchesVotes(t *testing.T) {
	svc, store := setup()
	ctx := context.Background()

	seq := []struct {
		user, vote string
	}{
		{"a", TypeTrue}, {"b", TypeTrue}, {"c", TypeNeedEvidence},
		{"a", TypeSuspicious}, {"b", TypeTrue}, {"c", TypeTrue}, {"a", TypeSuspicious},
	}
	for _, s := range seq {
		_, err := svc.Cast(ctx, reports.Viewer{ID: s.user}, "r1", s.vote)
		require.NoError(t, err)
	}

	var want reports.Tally
	for _, v := range store.votes {
		switch v.Type {
		case TypeTrue:
			want.True++
		case TypeSuspicious:
			want.Suspicious++
		case TypeNeedEvidence:
			want.NeedEvidence++
		}
	}
	require.Equal(t, want, *store.tallies["r1"])
	require.Equal(t, reports.Tally{True: 1}, want)
}

func TestCast_RollsBackOnFailure(t *testing.T) {
	svc, store := setup()
	ctx := context.Background()

	_, err := svc.Cast(ctx, alice, "r1", TypeTrue)
	require.NoError(t, err)

	store.failPut = true
	_, err = svc.Cast(ctx, alice, "r1", TypeNeedEvidence)
	require.Error(t, err)

	require.Equal(t, reports.Tally{True: 1}, *store.tallies["r1"])
	require.Equal(t, TypeTrue, store.votes[ID("r1", "alice")].Type)
}

func TestCast_Rejections(t *testing.T) {
	svc, _ := setup()
	ctx := context.Background()

	_, err := svc.Cast(ctx, alice, "r1", "fake")
	require.ErrorIs(t, err, pkgerrors.ErrValidation)

	_, err = svc.Cast(ctx, alice, "missing", TypeTrue)
	require.ErrorIs(t, err, pkgerrors.ErrNotFound)

	_, err = svc.Cast(ctx, alice, "pending", TypeTrue)
	require.ErrorIs(t, err, pkgerrors.ErrNotFound)

	_, err = svc.Cast(ctx, reports.Viewer{ID: "owner"}, "pending", TypeTrue)
	require.NoError(t, err)
}

func TestRetract(t *testing.T) {
	svc, store := setup()
	ctx := context.Background()

	out, err := svc.Retract(ctx, alice, "r1")
	require.NoError(t, err)
	require.Empty(t, out.Action)
	require.Equal(t, reports.Tally{}, out.Votes)

	_, err = svc.Cast(ctx, alice, "r1", TypeNeedEvidence)
	require.NoError(t, err)

	out, err = svc.Retract(ctx, alice, "r1")
	require.NoError(t, err)
	require.Equal(t, ActionRemoved, out.Action)
	require.Equal(t, reports.Tally{}, *store.tallies["r1"])

	mine, err := svc.GetUserVote(ctx, "r1", "alice")
	require.NoError(t, err)
	require.Equal(t, "", mine)
}

func TestCountersNeverNegative(t *testing.T) {
	svc, store := setup()
	ctx := context.Background()

	// a vote whose counter was never incremented, e.g. restored from a backup
	store.votes[ID("r1", "alice")] = Vote{ID: ID("r1", "alice"), ReportID: "r1", UserID: "alice", Type: TypeTrue}

	out, err := svc.Cast(ctx, alice, "r1", TypeSuspicious)
	require.NoError(t, err)
	require.Equal(t, reports.Tally{Suspicious: 1}, out.Votes)
}
