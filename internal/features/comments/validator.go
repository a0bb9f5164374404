package comments

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
)

var (
	ErrEmptyText = fmt.Errorf("%w: comment text is required", pkgerrors.ErrValidation)
	ErrLongText  = fmt.Errorf("%w: comment must be %d characters or less", pkgerrors.ErrValidation, MaxTextLength)
	ErrBadParent = fmt.Errorf("%w: parent comment does not belong to this report", pkgerrors.ErrValidation)
)

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return "", ErrLongText
	}
	return text, nil
}

func ValidateCreateCommentRequest(req *CreateCommentRequest) error {
	text, err := validateText(req.Text)
	if err != nil {
		return err
	}
	req.Text = text

	if req.ParentID != nil {
		if p := strings.TrimSpace(*req.ParentID); p != "" {
			req.ParentID = &p
		} else {
			req.ParentID = nil
		}
	}
	return nil
}

func ValidateUpdateCommentRequest(req *UpdateCommentRequest) error {
	text, err := validateText(req.Text)
	if err != nil {
		return err
	}
	req.Text = text
	return nil
}
