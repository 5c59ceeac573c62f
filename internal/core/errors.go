package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the core services. Handlers map these onto
// the HTTP status classes: ErrAuthRequired -> 401, ErrAdminRequired and
// ErrForbidden -> 403, the not-found family -> 404, ValidationError -> 400.
// Anything else is an upstream failure and surfaces as 500.
var (
	ErrAuthRequired  = errors.New("authentication required")
	ErrAdminRequired = errors.New("admin privileges required")
	ErrForbidden     = errors.New("forbidden")

	ErrServiceNotFound  = errors.New("service not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrProfileNotFound  = errors.New("profile not found")
)

// ValidationError reports missing or invalid request fields. The detail text
// is safe to surface to the caller verbatim.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// NewValidationError creates a ValidationError with a formatted detail message.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
