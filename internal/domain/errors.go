package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the sentinel every ValidationError unwraps to
	ErrValidation = errors.New("validation error")

	// ErrUnauthenticated is returned when an owner operation has no principal
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the principal does not own the business
	ErrForbidden = errors.New("access denied")
)

// ValidationError is a user-correctable input error bound to one field
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// AsValidationError extracts a ValidationError from an error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
