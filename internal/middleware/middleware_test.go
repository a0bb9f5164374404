package middleware

import (
	"bytes"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
)

func loggedRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.New(logger.DEBUG)
	log.SetOutput(buf)

	r := gin.New()
	r.Use(LoggerWithConfig(DefaultLoggerConfig(), log))
	r.POST("/auth/session", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})
	r.GET("/fail", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "code": "REPORT_NOT_FOUND"})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestLogger_RedactsCredentialsAndKeepsBody(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	img := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("tiny"))
	payload := `{"idToken":"abc.def","note":"hi","evidenceBase64":["` + img + `"]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/session?access_token=xyz", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// The handler still sees the full body
	require.Equal(t, payload, w.Body.String())

	out := buf.String()
	require.Contains(t, out, "200 POST /auth/session?access_token=")
	require.NotContains(t, out, "abc.def")
	require.NotContains(t, out, "xyz")
	require.NotContains(t, out, "base64")
	require.Contains(t, out, "[image 4B]")
	require.Contains(t, out, `"note":"hi"`)
}

func TestLogger_ErrorsAndSkippedPaths(t *testing.T) {
	var buf bytes.Buffer
	r := loggedRouter(&buf)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
	require.Empty(t, buf.String())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/fail", nil))
	out := buf.String()
	require.Contains(t, out, "[WARN]")
	require.Contains(t, out, "REPORT_NOT_FOUND")
}

func TestCaptureRequestBody_LargeBodyIsSummarized(t *testing.T) {
	body := strings.Repeat("x", 4096)
	req := httptest.NewRequest("POST", "/media/evidence", strings.NewReader(body))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=b")

	require.Equal(t, "[4.0KB multipart/form-data]", captureRequestBody(req, 2048))

	rest, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.Len(t, rest, 4096)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	origins := ParseOrigins("http://localhost:5173, https://voiceup.example/")
	r := gin.New()
	r.Use(CORS(origins))
	r.PATCH("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/x", nil)
	req.Header.Set("Origin", "https://voiceup.example")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "https://voiceup.example", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("PATCH", "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOrigins_CheckOrigin(t *testing.T) {
	origins := ParseOrigins("http://localhost:5173")

	req := httptest.NewRequest("GET", "/live/feed", nil)
	require.True(t, origins.CheckOrigin(req))

	req.Header.Set("Origin", "http://localhost:5173")
	require.True(t, origins.CheckOrigin(req))

	req.Header.Set("Origin", "http://other")
	require.False(t, origins.CheckOrigin(req))

	require.True(t, ParseOrigins("*").Allows("http://anything"))
}
