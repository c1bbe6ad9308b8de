package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrNoActiveSession      = errors.New("no active session")
	ErrActiveSessionExists  = errors.New("active session already exists")
	ErrIncompleteAssessment = errors.New("incomplete assessment")
	ErrPersistence          = errors.New("persistence failure")
)

// Invalid wraps a user-facing validation message with ErrInvalidInput.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Persistence tags a record store failure so callers can keep in-progress state.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}
