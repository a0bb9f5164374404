package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/xyz-asif/voiceup/internal/config"
)

// Identity is the verified subject of a Firebase ID token
type Identity struct {
	UID   string
	Email string
}

// IdentityProvider is the subset of Firebase Authentication the API relies on
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
	CreateAccount(ctx context.Context, email, password string) (*Identity, error)
	RevokeSessions(ctx context.Context, uid string) error
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	DeleteAccount(ctx context.Context, uid string) error
}

// InitFirebase initializes the Firebase Admin SDK and returns the Auth client
func InitFirebase(cfg *config.Config) (*fbauth.Client, error) {
	opt := option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	return client, nil
}

// FirebaseIdentity implements IdentityProvider with the Admin SDK
type FirebaseIdentity struct {
	client *fbauth.Client
}

// NewFirebaseIdentity wraps a Firebase Auth client
func NewFirebaseIdentity(client *fbauth.Client) *FirebaseIdentity {
	return &FirebaseIdentity{client: client}
}

// VerifyIDToken checks signature, expiry and revocation of an ID token
func (f *FirebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	token, err := f.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid firebase token: %w", err)
	}

	id := &Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}

// CreateAccount registers an email/password account
func (f *FirebaseIdentity) CreateAccount(ctx context.Context, email, password string) (*Identity, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	record, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}
	return &Identity{UID: record.UID, Email: record.Email}, nil
}

// RevokeSessions invalidates all refresh tokens of a user
func (f *FirebaseIdentity) RevokeSessions(ctx context.Context, uid string) error {
	return f.client.RevokeRefreshTokens(ctx, uid)
}

// SetDisabled mirrors the disabled flag into Firebase Auth
func (f *FirebaseIdentity) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	_, err := f.client.UpdateUser(ctx, uid, (&fbauth.UserToUpdate{}).Disabled(disabled))
	return err
}

// DeleteAccount removes the Firebase account. A missing account is not an error.
func (f *FirebaseIdentity) DeleteAccount(ctx context.Context, uid string) error {
	err := f.client.DeleteUser(ctx, uid)
	if err != nil && fbauth.IsUserNotFound(err) {
		return nil
	}
	return err
}

// IsEmailTaken reports whether err means the email is already registered
func IsEmailTaken(err error) bool {
	return fbauth.IsEmailAlreadyExists(err)
}
