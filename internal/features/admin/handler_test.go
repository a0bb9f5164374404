package admin

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/features/auth"
)

func adminRouter(u *auth.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc, _, _, _ := newFixture()
	r := gin.New()
	signIn := func(c *gin.Context) {
		if u != nil {
			c.Set(auth.ContextUser, u)
			c.Set(auth.ContextUserID, u.ID)
		}
		c.Next()
	}
	RegisterRoutes(r.Group(""), NewHandler(svc), auth.Middlewares{
		Required: signIn,
		Optional: signIn,
		Admin:    auth.RequireAdmin(),
	})
	return r
}

func do(r *gin.Engine, method, path, body string) (int, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestRoutes_RequireAdmin(t *testing.T) {
	code, body := do(adminRouter(plainUser), "GET", "/admin/reports", "")
	require.Equal(t, 403, code)
	require.Equal(t, "ADMIN_REQUIRED", body["code"])

	code, _ = do(adminRouter(nil), "POST", "/admin/reports/r1/approve", "")
	require.Equal(t, 401, code)
}

func TestRoutes_Moderation(t *testing.T) {
	r := adminRouter(adminUser)

	code, body := do(r, "GET", "/admin/reports?status=pending", "")
	require.Equal(t, 200, code)
	require.Len(t, body["data"].(map[string]any)["items"], 1)

	code, _ = do(r, "POST", "/admin/reports/r1/approve", "")
	require.Equal(t, 200, code)

	code, _ = do(r, "DELETE", "/admin/reports/r1/images/x", "")
	require.Equal(t, 400, code)

	code, body = do(r, "DELETE", "/admin/reports/r1/images/7", "")
	require.Equal(t, 422, code)
	require.Equal(t, "VALIDATION_FAILED", body["code"])

	code, _ = do(r, "PATCH", "/admin/reports/r1", `{"location":{"address":"Gulshan"}}`)
	require.Equal(t, 200, code)
}

func TestRoutes_SelfProtection(t *testing.T) {
	r := adminRouter(adminUser)

	code, body := do(r, "POST", "/admin/users/boss/disable", "")
	require.Equal(t, 403, code)
	require.Equal(t, "SELF_ACTION", body["code"])

	code, body = do(r, "DELETE", "/admin/users/boss", "")
	require.Equal(t, 403, code)
	require.Equal(t, "SELF_ACTION", body["code"])

	code, _ = do(r, "POST", "/admin/users/joe/disable", "")
	require.Equal(t, 200, code)

	code, body = do(r, "DELETE", "/admin/users/ghost", "")
	require.Equal(t, 404, code)
	require.Equal(t, "USER_NOT_FOUND", body["code"])
}
