package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "simple validation error",
			field:    "dob",
			message:  "must be formatted as YYYY-MM-DD",
			expected: "validation error on field 'dob': must be formatted as YYYY-MM-DD",
		},
		{
			name:     "range error",
			field:    "lat",
			message:  "must be between -90 and 90",
			expected: "validation error on field 'lat': must be between -90 and 90",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{
				Field:   tt.field,
				Message: tt.message,
			}

			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_IsInvalidInput(t *testing.T) {
	err := fmt.Errorf("generate chart: %w", &ValidationError{Field: "tob", Message: "required"})

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrEphemeris))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "tob", validationErr.Field)
}

func TestValidationError_InErrorChain(t *testing.T) {
	baseErr := &ValidationError{
		Field:   "lon",
		Message: "out of range",
	}

	wrappedErr := errors.Join(ErrValidationFailed, baseErr)

	var validationErr *ValidationError
	assert.True(t, errors.As(wrappedErr, &validationErr))
	assert.Equal(t, "lon", validationErr.Field)
	assert.True(t, errors.Is(wrappedErr, ErrValidationFailed))
}

func TestEphemerisError(t *testing.T) {
	cause := errors.New("file not found")

	tests := []struct {
		name     string
		err      *EphemerisError
		expected string
	}{
		{
			name:     "body query",
			err:      &EphemerisError{Op: "body_position", Body: "Moon", Err: cause},
			expected: "ephemeris body_position(Moon): file not found",
		},
		{
			name:     "cusp query",
			err:      &EphemerisError{Op: "house_cusps", Err: cause},
			expected: "ephemeris house_cusps: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrEphemeris))
			assert.True(t, errors.Is(tt.err, cause))
			assert.False(t, errors.Is(tt.err, ErrInvalidInput))
		})
	}
}

func TestSentinelErrors_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "ErrInvalidInput", err: ErrInvalidInput, expected: "invalid input"},
		{name: "ErrValidationFailed", err: ErrValidationFailed, expected: "validation failed"},
		{name: "ErrEphemeris", err: ErrEphemeris, expected: "ephemeris failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
