package validator

import (
	"encoding/base64"
	"io"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	dataURLRegex = regexp.MustCompile(`^data:(image\/[a-zA-Z0-9.+-]+);base64,([A-Za-z0-9+/=\s]+)$`)
)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsImageDataURL reports whether s is a base64 encoded image data URL
func IsImageDataURL(s string) bool {
	return dataURLRegex.MatchString(s)
}

// DataURLSize returns the decoded byte length of an image data URL, or -1
// when s is not one or its payload is not valid padded base64. The payload
// is decoded as a stream and discarded.
func DataURLSize(s string) int {
	m := dataURLRegex.FindStringSubmatch(s)
	if m == nil {
		return -1
	}
	payload := strings.Join(strings.Fields(m[2]), "")
	n, err := io.Copy(io.Discard, base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload)))
	if err != nil || n == 0 {
		return -1
	}
	return int(n)
}

// Register adds the project's custom binding tags to gin's validator engine.
// Safe to call more than once.
func Register(tags map[string]playground.Func) error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return nil
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// FieldErrors flattens binding errors into field -> tag pairs for error payloads
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
