package auth

import (
	"errors"
	"strings"

	"github.com/xyz-asif/voiceup/internal/pkg/validator"
)

// ValidateRegister checks the registration payload beyond binding tags
func ValidateRegister(req *RegisterRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !validator.IsValidEmail(req.Email) {
		return errors.New("invalid email address")
	}
	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
