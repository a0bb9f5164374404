package auth

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]*User
}

func newFakeUsers(users ...*User) *fakeUsers {
	f := &fakeUsers{users: map[string]*User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) GetUserByID(_ context.Context, uid string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return nil, pkgerrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) EnsureUser(_ context.Context, uid, email string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		u = &User{ID: uid, Role: RoleUser}
		f.users[uid] = u
	}
	u.Email = email
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) EndSessions(_ context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[uid]
	if !ok {
		return pkgerrors.ErrNotFound
	}
	u.Session++
	return nil
}

type fakeIdentity struct {
	tokens  map[string]*Identity
	revoked []string
}

func (f *fakeIdentity) VerifyIDToken(_ context.Context, idToken string) (*Identity, error) {
	id, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("bad token")
	}
	return id, nil
}

func (f *fakeIdentity) CreateAccount(_ context.Context, email, _ string) (*Identity, error) {
	return &Identity{UID: "new-" + email, Email: email}, nil
}

func (f *fakeIdentity) RevokeSessions(_ context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return nil
}

func (f *fakeIdentity) SetDisabled(context.Context, string, bool) error { return nil }
func (f *fakeIdentity) DeleteAccount(context.Context, string) error       { return nil }
