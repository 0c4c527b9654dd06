package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the single error body shape used by every handler.
// Details carries upstream/store failure text and is omitted in production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse acknowledges a mutating request.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BindingErrorDetail flattens a request binding failure into a short field
// summary, e.g. "Email failed on the 'email' rule". Non-validator errors
// (malformed JSON and the like) pass through as-is.
func BindingErrorDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
