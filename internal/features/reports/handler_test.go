package reports

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/features/auth"
)

// asUser stands in for the auth middleware
func asUser(u *auth.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			c.Set(auth.ContextUser, u)
			c.Set(auth.ContextUserID, u.ID)
		}
		c.Next()
	}
}

func setupRouter(store *fakeStore, u *auth.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(store, fakeCounter{}, fakeVotes{}))
	g := r.Group("/reports", asUser(u))
	g.POST("", h.Submit)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Edit)
	g.DELETE("/:id", h.Delete)
	return r
}

func call(r *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&buf).Encode(payload)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHandler_SubmitValidation(t *testing.T) {
	r := setupRouter(newFakeStore(), &auth.User{ID: "u1", Role: auth.RoleUser})

	w, body := call(r, "POST", "/reports", map[string]any{"description": "x", "corruptionType": "ঘুষ"})
	require.Equal(t, 422, w.Code)
	require.Equal(t, "at least one image or link is required", body["message"])
	require.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestHandler_SubmitCreated(t *testing.T) {
	store := newFakeStore()
	r := setupRouter(store, &auth.User{ID: "u1", Role: auth.RoleUser})

	w, body := call(r, "POST", "/reports", validSubmission())
	require.Equal(t, 201, w.Code)
	data := body["data"].(map[string]any)
	require.Equal(t, "pending", data["status"])
	require.Equal(t, "u1", data["userId"])
	require.Len(t, store.reports, 1)
}

func TestHandler_GetHiddenIs404(t *testing.T) {
	r := setupRouter(newFakeStore(sample("p", "owner", StatusPending)), nil)

	w, body := call(r, "GET", "/reports/p", nil)
	require.Equal(t, 404, w.Code)
	require.Equal(t, "REPORT_NOT_FOUND", body["code"])
}

func TestHandler_DeleteForbidden(t *testing.T) {
	r := setupRouter(newFakeStore(sample("p", "owner", StatusApproved)), &auth.User{ID: "x", Role: auth.RoleUser})

	w, _ := call(r, "DELETE", "/reports/p", nil)
	require.Equal(t, 403, w.Code)
}
