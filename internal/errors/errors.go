// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCorpus indicates the recommendation index was built from an empty catalog.
	ErrInvalidCorpus = errors.New("invalid corpus: no courses to index")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a request without a valid staff session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimitExceeded indicates rate limit has been exceeded.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrDuplicate indicates a uniqueness constraint was violated.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrWrongPassword indicates a password check failed.
	ErrWrongPassword = errors.New("wrong password")
)

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// UploadError represents project upload failures with context.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("upload error (file=%s): %v", e.Filename, e.Err)
	}
	return fmt.Sprintf("upload error: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// NewUploadError creates a new upload error.
func NewUploadError(filename string, err error) *UploadError {
	return &UploadError{
		Filename: filename,
		Err:      err,
	}
}
