package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired     = errors.New("token expired")
	ErrInvalid     = errors.New("invalid token")
	errConfigEmpty = errors.New("JWT config is required")
)

// Claims represents the session token claims issued after Firebase sign-in
type Claims struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	Session int    `json:"sv"` // profile session counter; sign-out bumps it
	jwt.RegisteredClaims
}

// Config represents JWT configuration
type Config struct {
	Secret        string
	AccessExpiry  time.Duration
	Issuer        string
	Audience      string
	SigningMethod jwt.SigningMethod
}

// DefaultConfig returns default JWT configuration
func DefaultConfig(secret string, expireHours int) *Config {
	if expireHours <= 0 {
		expireHours = 24
	}
	return &Config{
		Secret:        secret,
		AccessExpiry:  time.Duration(expireHours) * time.Hour,
		Issuer:        "voiceup-api",
		Audience:      "voiceup-users",
		SigningMethod: jwt.SigningMethodHS256,
	}
}

// GenerateTokenWithRole generates a JWT token with role information, bound to
// the given session counter
func GenerateTokenWithRole(userID, email, role string, session int, cfg *Config) (string, error) {
	if cfg == nil {
		return "", errConfigEmpty
	}

	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		Session: session,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(cfg.SigningMethod, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken validates and parses a JWT token. Failures wrap ErrExpired
// or ErrInvalid.
func ValidateToken(tokenString string, cfg *Config) (*Claims, error) {
	if cfg == nil {
		return nil, errConfigEmpty
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithAudience(cfg.Audience))

	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, fmt.Errorf("%w: %v", ErrExpired, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalid
	}

	return claims, nil
}

// ExpiresAt returns the expiry of a token issued now under cfg
func ExpiresAt(cfg *Config) time.Time {
	return time.Now().Add(cfg.AccessExpiry)
}
