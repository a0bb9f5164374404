package votes

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/pkg/ratelimit"
)

func voteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc, _ := setup()
	r := gin.New()
	signedIn := func(c *gin.Context) {
		u := &auth.User{ID: "alice", Role: auth.RoleUser}
		c.Set(auth.ContextUser, u)
		c.Set(auth.ContextUserID, u.ID)
		c.Next()
	}
	RegisterRoutes(r.Group(""), NewHandler(svc), signedIn, ratelimit.New(100, time.Minute))
	return r
}

func send(r *gin.Engine, method, path, body string) (int, map[string]any) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestHandler_CastAndRead(t *testing.T) {
	r := voteRouter()

	code, body := send(r, "POST", "/reports/r1/vote", `{"type":"true"}`)
	require.Equal(t, 200, code)
	data := body["data"].(map[string]any)
	require.Equal(t, "true", data["myVote"])
	require.Equal(t, "added", data["action"])

	code, body = send(r, "GET", "/reports/r1/vote", "")
	require.Equal(t, 200, code)
	require.Equal(t, "true", body["data"].(map[string]any)["myVote"])

	code, _ = send(r, "DELETE", "/reports/r1/vote", "")
	require.Equal(t, 200, code)
}

func TestHandler_CastErrors(t *testing.T) {
	r := voteRouter()

	code, body := send(r, "POST", "/reports/r1/vote", `{"type":"maybe"}`)
	require.Equal(t, 422, code)
	require.Equal(t, "VALIDATION_FAILED", body["code"])

	code, _ = send(r, "POST", "/reports/r1/vote", `{}`)
	require.Equal(t, 400, code)

	code, body = send(r, "POST", "/reports/nope/vote", `{"type":"true"}`)
	require.Equal(t, 404, code)
	require.Equal(t, "REPORT_NOT_FOUND", body["code"])
}
