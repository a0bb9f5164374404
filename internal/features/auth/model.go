package auth

import (
	"fmt"
	"time"

	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

// Role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a profile in the users collection, keyed by Firebase UID
type User struct {
	ID        string    `bson:"_id" json:"uid"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	Disabled  bool      `bson:"disabled" json:"disabled"`
	Session   int       `bson:"session" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// userDocument is the raw stored shape. Every field is optional so that
// missing data is detected instead of decoding to zero values.
type userDocument struct {
	ID        string     `bson:"_id"`
	Email     *string    `bson:"email"`
	Role      *string    `bson:"role"`
	Disabled  *bool      `bson:"disabled"`
	Session   *int       `bson:"session"`
	CreatedAt *time.Time `bson:"createdAt"`
}

func (d *userDocument) toUser() (*User, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("%w: user without id", pkgerrors.ErrMalformedDocument)
	}
	if d.Role == nil || (*d.Role != RoleUser && *d.Role != RoleAdmin) {
		return nil, fmt.Errorf("%w: user %s has invalid role", pkgerrors.ErrMalformedDocument, d.ID)
	}

	u := &User{ID: d.ID, Role: *d.Role}
	if d.Email != nil {
		u.Email = *d.Email
	}
	if d.Disabled != nil {
		u.Disabled = *d.Disabled
	}
	if d.Session != nil {
		u.Session = *d.Session
	}
	if d.CreatedAt != nil {
		u.CreatedAt = *d.CreatedAt
	}
	return u, nil
}

// RegisterRequest represents the payload for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SessionRequest exchanges a Firebase ID token for an API token
type SessionRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User        *User     `json:"user"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
