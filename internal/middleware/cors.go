package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Origins is the parsed FRONTEND_URL setting: a comma separated list of
// allowed origins, or "*".
type Origins []string

// ParseOrigins splits a comma separated origin list
func ParseOrigins(raw string) Origins {
	var out Origins
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Allows reports whether origin may call the API
func (o Origins) Allows(origin string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range o {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// CheckOrigin is the WebSocket upgrade check. Requests without an Origin
// header come from non-browser clients and are accepted.
func (o Origins) CheckOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || o.Allows(origin)
}

func CORS(allowed Origins) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// With credentials the wildcard is not allowed, so the request origin is echoed
		if allowed.Allows(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
		}

		c.Header("Vary", "Origin, Access-Control-Request-Method, Access-Control-Request-Headers")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		reqHeaders := c.Request.Header.Get("Access-Control-Request-Headers")
		if strings.TrimSpace(reqHeaders) == "" {
			reqHeaders = "Content-Type, Authorization"
		}
		c.Header("Access-Control-Allow-Headers", reqHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
