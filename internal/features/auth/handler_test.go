package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/pkg/jwt"
)

func sessionRouter(users *fakeUsers, identity *fakeIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(users, identity, testJWT)
	r.POST("/session", h.Session)
	r.POST("/register", h.Register)
	r.POST("/logout", NewAuthMiddleware(users, testJWT), h.Logout)
	return r
}

func post(r *gin.Engine, path string, payload any, token string) (*httptest.ResponseRecorder, map[string]any) {
	raw, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSession_CreatesProfileAndIssuesToken(t *testing.T) {
	users := newFakeUsers()
	identity := &fakeIdentity{tokens: map[string]*Identity{
		"fb-token": {UID: "fb-uid", Email: "new@example.com"},
	}}
	r := sessionRouter(users, identity)

	w, body := post(r, "/session", SessionRequest{IDToken: "fb-token"}, "")
	require.Equal(t, 200, w.Code)

	data := body["data"].(map[string]any)
	tok := data["accessToken"].(string)
	claims, err := jwt.ValidateToken(tok, testJWT)
	require.NoError(t, err)
	require.Equal(t, "fb-uid", claims.UserID)
	require.Equal(t, RoleUser, claims.Role)

	stored, err := users.GetUserByID(context.Background(), "fb-uid")
	require.NoError(t, err)
	require.Equal(t, "new@example.com", stored.Email)
}

func TestSession_RejectsDisabled(t *testing.T) {
	users := newFakeUsers(&User{ID: "off", Role: RoleUser, Disabled: true})
	identity := &fakeIdentity{tokens: map[string]*Identity{"t": {UID: "off"}}}

	w, body := post(sessionRouter(users, identity), "/session", SessionRequest{IDToken: "t"}, "")
	require.Equal(t, 403, w.Code)
	require.Equal(t, "ACCOUNT_DISABLED", body["code"])
}

func TestSession_BadFirebaseToken(t *testing.T) {
	r := sessionRouter(newFakeUsers(), &fakeIdentity{tokens: map[string]*Identity{}})

	w, _ := post(r, "/session", SessionRequest{IDToken: "nope"}, "")
	require.Equal(t, 401, w.Code)
}

func TestRegister_ValidatesEmail(t *testing.T) {
	r := sessionRouter(newFakeUsers(), &fakeIdentity{})

	w, _ := post(r, "/register", map[string]string{"email": "bad", "password": "secret123"}, "")
	require.Equal(t, 400, w.Code)

	w, body := post(r, "/register", RegisterRequest{Email: "Ok@Example.com", Password: "secret123"}, "")
	require.Equal(t, 201, w.Code)
	data := body["data"].(map[string]any)
	require.Equal(t, "ok@example.com", data["email"])
	require.Equal(t, RoleUser, data["role"])
}

func TestLogout_RevokesSessions(t *testing.T) {
	u := &User{ID: "u9", Email: "u9@example.com", Role: RoleUser}
	identity := &fakeIdentity{tokens: map[string]*Identity{"fb-u9": {UID: "u9", Email: "u9@example.com"}}}
	r := sessionRouter(newFakeUsers(u), identity)
	tok := tokenFor(t, u)

	w, _ := post(r, "/logout", nil, tok)
	require.Equal(t, 200, w.Code)
	require.Equal(t, []string{"u9"}, identity.revoked)

	// the signed-out token no longer authenticates
	w, body := post(r, "/logout", nil, tok)
	require.Equal(t, 401, w.Code)
	require.Equal(t, "SESSION_ENDED", body["code"])

	// signing in again issues a token for the new session
	w, body = post(r, "/session", SessionRequest{IDToken: "fb-u9"}, "")
	require.Equal(t, 200, w.Code)
	fresh := body["data"].(map[string]any)["accessToken"].(string)

	w, _ = post(r, "/logout", nil, fresh)
	require.Equal(t, 200, w.Code)
}
