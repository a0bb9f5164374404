package auth

// Swagger API metadata is defined globally in cmd/api/main.go

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/pkg/jwt"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

// UserStore is the profile persistence the handler needs
type UserStore interface {
	UserFinder
	EnsureUser(ctx context.Context, uid, email string) (*User, error)
	EndSessions(ctx context.Context, uid string) error
}

// Handler handles HTTP requests for the auth feature
type Handler struct {
	users    UserStore
	identity IdentityProvider
	jwtCfg   *jwt.Config
	log      *logger.Logger
}

// NewHandler creates a new auth handler
func NewHandler(users UserStore, identity IdentityProvider, jwtCfg *jwt.Config) *Handler {
	return &Handler{
		users:    users,
		identity: identity,
		jwtCfg:   jwtCfg,
		log:      logger.Default().With("auth"),
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a Firebase email/password account and its profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Credentials"
// @Success 201 {object} response.APIResponse{data=User}
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := ValidateRegister(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	id, err := h.identity.CreateAccount(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if IsEmailTaken(err) {
			response.Conflict(c, "Email already registered", "EMAIL_EXISTS")
			return
		}
		h.log.Error("create account: %v", err)
		response.InternalServerError(c, "Failed to create account", "IDENTITY_ERROR")
		return
	}

	user, err := h.users.EnsureUser(c.Request.Context(), id.UID, id.Email)
	if err != nil {
		h.log.Error("create profile %s: %v", id.UID, err)
		response.InternalServerError(c, "Failed to create profile", "DATABASE_ERROR")
		return
	}

	response.Created(c, user, "Account created")
}

// Session godoc
// @Summary Start an API session
// @Description Exchange a Firebase ID token for an API access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SessionRequest true "Firebase ID token"
// @Success 200 {object} response.APIResponse{data=AuthResponse}
// @Failure 401 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /auth/session [post]
func (h *Handler) Session(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	id, err := h.identity.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		response.Unauthorized(c, "Invalid Firebase token", "INVALID_TOKEN")
		return
	}

	user, err := h.users.EnsureUser(c.Request.Context(), id.UID, id.Email)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrMalformedDocument) {
			h.log.Warn("profile %s is malformed: %v", id.UID, err)
		}
		response.InternalServerError(c, "Failed to load profile", "DATABASE_ERROR")
		return
	}
	if user.Disabled {
		response.Forbidden(c, "Account is disabled", "ACCOUNT_DISABLED")
		return
	}

	token, err := jwt.GenerateTokenWithRole(user.ID, user.Email, user.Role, user.Session, h.jwtCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token", "TOKEN_ERROR")
		return
	}

	response.Success(c, AuthResponse{
		User:        user,
		AccessToken: token,
		ExpiresAt:   jwt.ExpiresAt(h.jwtCfg),
	})
}

// Me godoc
// @Summary Get current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=User}
// @Failure 401 {object} response.APIResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}
	response.Success(c, user)
}

// Logout godoc
// @Summary Sign out everywhere
// @Description Invalidate every API token of the user and revoke their Firebase refresh tokens
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	if err := h.users.EndSessions(c.Request.Context(), user.ID); err != nil {
		h.log.Error("end sessions for %s: %v", user.ID, err)
		response.InternalServerError(c, "Failed to sign out", "DATABASE_ERROR")
		return
	}
	if err := h.identity.RevokeSessions(c.Request.Context(), user.ID); err != nil {
		h.log.Warn("revoke sessions for %s: %v", user.ID, err)
		response.InternalServerError(c, "Failed to sign out", "IDENTITY_ERROR")
		return
	}

	response.Success(c, nil, "Signed out")
}
