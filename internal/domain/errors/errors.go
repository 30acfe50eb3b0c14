package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrForbidden          = errors.New("operation not permitted for role")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// ErrValidation is the sentinel every ValidationError wraps, so callers can
// dispatch on the failure class without inspecting the concrete type.
var ErrValidation = errors.New("validation failed")

// ValidationError identifies the first offending field of a form submission.
// Item is the 1-based line item index, or 0 for header fields.
type ValidationError struct {
	Field  string
	Item   int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Item > 0 {
		return fmt.Sprintf("item %d: %s: %s", e.Item, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a header-level validation failure.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewItemValidationError builds a validation failure for the item at the
// given 1-based position.
func NewItemValidationError(item int, field, reason string) *ValidationError {
	return &ValidationError{Field: field, Item: item, Reason: reason}
}
