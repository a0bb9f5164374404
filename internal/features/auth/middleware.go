package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/pkg/jwt"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

// Context keys set by the auth middlewares
const (
	ContextUser   = "user"
	ContextUserID = "userID"
)

// UserFinder loads the stored profile behind a token
type UserFinder interface {
	GetUserByID(ctx context.Context, uid string) (*User, error)
}

// NewAuthMiddleware creates a Gin middleware for JWT authentication.
// The profile is re-read on every request so that role changes and
// disabling take effect immediately.
func NewAuthMiddleware(users UserFinder, cfg *jwt.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		user, err := authenticate(c.Request.Context(), users, cfg, tokenString)
		if err != nil {
			abortWith(c, err)
			return
		}

		setUser(c, user)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is present and
// lets anonymous requests through
func OptionalAuthMiddleware(users UserFinder, cfg *jwt.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		user, err := authenticate(c.Request.Context(), users, cfg, tokenString)
		if err == nil {
			setUser(c, user)
		}
		c.Next()
	}
}

// RequireAdmin must run after NewAuthMiddleware
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			response.Forbidden(c, "Admin access required", "ADMIN_REQUIRED")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, if any
func CurrentUser(c *gin.Context) (*User, bool) {
	val, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := val.(*User)
	return user, ok && user != nil
}

func authenticate(ctx context.Context, users UserFinder, cfg *jwt.Config, tokenString string) (*User, error) {
	claims, err := jwt.ValidateToken(tokenString, cfg)
	if errors.Is(err, jwt.ErrExpired) {
		return nil, errTokenExpired
	}
	if err != nil {
		return nil, pkgerrors.ErrUnauthorized
	}

	user, err := users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	if user.Disabled {
		return nil, pkgerrors.ErrAccountDisabled
	}
	if claims.Session != user.Session {
		return nil, errSessionEnded
	}
	return user, nil
}

var (
	errTokenExpired = fmt.Errorf("%w: token expired", pkgerrors.ErrUnauthorized)
	errSessionEnded = fmt.Errorf("%w: signed out", pkgerrors.ErrUnauthorized)
)

func abortWith(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrAccountDisabled):
		response.Forbidden(c, "Account is disabled", "ACCOUNT_DISABLED")
	case errors.Is(err, errTokenExpired):
		response.Unauthorized(c, "Session expired, sign in again", "TOKEN_EXPIRED")
	case errors.Is(err, errSessionEnded):
		response.Unauthorized(c, "Signed out, sign in again", "SESSION_ENDED")
	default:
		response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
	}
	c.Abort()
}

func setUser(c *gin.Context, user *User) {
	c.Set(ContextUser, user)
	c.Set(ContextUserID, user.ID)
}

// bearerToken reads the Authorization header. WebSocket handshakes from
// browsers cannot set headers, so they may pass access_token instead.
func bearerToken(c *gin.Context) (string, bool) {
	if c.GetHeader("Authorization") == "" && strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		token := c.Query("access_token")
		return token, token != ""
	}
	fields := strings.Fields(c.GetHeader("Authorization"))
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	return fields[1], true
}
