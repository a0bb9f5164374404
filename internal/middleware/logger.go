package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/validator"
)

const redacted = "********"

// LoggerConfig controls what the request logger captures
type LoggerConfig struct {
	LogRequestBody bool
	LogErrorBody   bool
	MaxBodySize    int64    // bodies above this are summarized by size
	SkipPaths      []string // exact paths, or prefixes when ending in "/"
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogRequestBody: true,
		LogErrorBody:   true,
		MaxBodySize:    2048,
		SkipPaths:      []string{"/health", "/swagger/"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig(), logger.Default().With("http"))
}

func LoggerWithConfig(config LoggerConfig, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skipped(config.SkipPaths, path) {
			c.Next()
			return
		}

		start := time.Now()
		method := c.Request.Method
		target := path
		if q := redactQuery(c.Request.URL.Query()); q != "" {
			target += "?" + q
		}

		// Live connections are long-lived; log open and close only
		if isWebSocket(c.Request) {
			log.Info("%s %s upgrade ip=%s", method, target, c.ClientIP())
			c.Next()
			log.Info("%s %s closed after %v user=%s", method, path, time.Since(start).Round(time.Millisecond), c.GetString("userID"))
			return
		}

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			requestBody = captureRequestBody(c.Request, config.MaxBodySize)
		}

		writer := &limitedResponseWriter{ResponseWriter: c.Writer, maxSize: config.MaxBodySize}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		line := fmt.Sprintf("%d %s %s %v %s", status, method, target, time.Since(start).Round(time.Microsecond), formatSize(writer.size))
		if userID := c.GetString("userID"); userID != "" {
			line += " user=" + userID
		}
		if requestBody != "" {
			line += " body=" + requestBody
		}
		if config.LogErrorBody && status >= 400 && writer.body.Len() > 0 {
			line += " response=" + compactJSON(writer.body.Bytes())
		}

		switch {
		case status >= 500:
			log.Error("%s", line)
		case status >= 400:
			log.Warn("%s", line)
		default:
			log.Info("%s", line)
		}
	}
}

// limitedResponseWriter keeps a copy of the first maxSize bytes written
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	if w.size+int64(n) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)
	return n, err
}

// captureRequestBody reads up to max bytes for logging and puts them back in
// front of whatever is left of the body
func captureRequestBody(r *http.Request, max int64) string {
	contentType := r.Header.Get("Content-Type")
	if r.ContentLength > max || !strings.Contains(contentType, "application/json") {
		return fmt.Sprintf("[%s %s]", formatSize(r.ContentLength), mediaType(contentType))
	}

	head, err := io.ReadAll(io.LimitReader(r.Body, max))
	r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(head), r.Body), Closer: r.Body}
	if err != nil {
		return ""
	}
	return sanitizeBody(head)
}

type readCloser struct {
	io.Reader
	io.Closer
}

func sanitizeBody(body []byte) string {
	var data interface{}
	if json.Unmarshal(body, &data) != nil {
		return truncateString(string(body), 200)
	}
	out, err := json.Marshal(hideSensitiveFields(data))
	if err != nil {
		return ""
	}
	return truncateString(string(out), 500)
}

// hideSensitiveFields masks credentials and replaces inline images with
// their size
func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = redacted
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	case string:
		if validator.IsImageDataURL(v) {
			if size := validator.DataURLSize(v); size >= 0 {
				return fmt.Sprintf("[image %s]", formatSize(int64(size)))
			}
			return "[invalid image]"
		}
		return v
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	for _, s := range []string{"password", "token", "secret", "authorization", "credential"} {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

// redactQuery encodes the query with token parameters masked
func redactQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	for key := range values {
		if isSensitiveField(strings.ToLower(key)) {
			values.Set(key, redacted)
		}
	}
	return truncateString(values.Encode(), 200)
}

func compactJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return truncateString(string(body), 200)
	}
	return truncateString(buf.String(), 500)
}

func isWebSocket(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}

func skipped(paths []string, path string) bool {
	for _, p := range paths {
		if path == p || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return true
		}
	}
	return false
}

func mediaType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	if contentType == "" {
		return "unknown"
	}
	return strings.TrimSpace(contentType)
}

func formatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
