package service

import (
	"errors"

	"github.com/minhle/healthtrack/backend/internal/validation"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already exists")
	ErrNotFound           = errors.New("record not found")
)

// ValidationError carries per-field validation failures back to the caller.
// It is an expected outcome of user input, not an internal failure; handlers
// surface the field messages as-is.
type ValidationError struct {
	Fields map[string]validation.FieldResult
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError from batch results, returning
// nil when every field passed.
func NewValidationError(results map[string]validation.FieldResult) *ValidationError {
	failed := validation.Failures(results)
	if len(failed) == 0 {
		return nil
	}
	return &ValidationError{Fields: failed}
}
