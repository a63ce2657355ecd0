package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")

	// ErrEphemeris indicates that the ephemeris provider could not compute
	// a position or a cusp set. It is fatal for the chart being computed.
	ErrEphemeris = errors.New("ephemeris failure")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports ErrInvalidInput so callers can classify any ValidationError
// without inspecting the field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// EphemerisError wraps a failure returned by the ephemeris provider.
type EphemerisError struct {
	Op   string // provider operation, e.g. "body_position"
	Body string // body name, empty for cusp queries
	Err  error
}

// Error returns the operation, the body when known, and the underlying cause.
func (e *EphemerisError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("ephemeris %s(%s): %v", e.Op, e.Body, e.Err)
	}
	return fmt.Sprintf("ephemeris %s: %v", e.Op, e.Err)
}

// Unwrap returns the provider error.
func (e *EphemerisError) Unwrap() error {
	return e.Err
}

// Is reports ErrEphemeris for every EphemerisError.
func (e *EphemerisError) Is(target error) bool {
	return target == ErrEphemeris
}
