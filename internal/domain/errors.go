package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrBusy       = errors.New("request already in progress")

	// ErrQuotaExceeded is returned before any external call when the daily
	// generation limit has been reached.
	ErrQuotaExceeded = errors.New("daily generation quota exceeded")

	// ErrGeneration wraps transport or service failures of the text generator.
	ErrGeneration = errors.New("generation failed")

	// ErrMalformedResponse is returned when generator output does not match
	// the declared shape. Callers treat it like ErrGeneration.
	ErrMalformedResponse = errors.New("malformed generator response")

	ErrSpeechUnavailable = errors.New("speech capability unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IsGenerationFailure reports whether err belongs to the generator failure
// class (service failure or malformed output).
func IsGenerationFailure(err error) bool {
	return errors.Is(err, ErrGeneration) || errors.Is(err, ErrMalformedResponse)
}
