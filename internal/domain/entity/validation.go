package entity

import (
	"fmt"
	"math"
	"time"
)

// Accepted layouts for birth date and time fields.
const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	ShortTimeLayout = "15:04"
)

// Coordinate and offset bounds.
const (
	MaxLatitude       = 90.0
	MaxLongitude      = 180.0
	MaxTimezoneOffset = 14.0
)

// ValidateBirthDate checks that dob is a calendar date in YYYY-MM-DD form.
func ValidateBirthDate(dob string) error {
	if dob == "" {
		return &ValidationError{Field: "dob", Message: "date of birth is required"}
	}
	if _, err := time.Parse(DateLayout, dob); err != nil {
		return &ValidationError{Field: "dob", Message: "must be formatted as YYYY-MM-DD"}
	}
	return nil
}

// ValidateBirthTime checks that tob is a wall-clock time in HH:MM:SS or HH:MM form.
func ValidateBirthTime(tob string) error {
	if tob == "" {
		return &ValidationError{Field: "tob", Message: "time of birth is required"}
	}
	if _, err := time.Parse(TimeLayout, tob); err == nil {
		return nil
	}
	if _, err := time.Parse(ShortTimeLayout, tob); err == nil {
		return nil
	}
	return &ValidationError{Field: "tob", Message: "must be formatted as HH:MM:SS"}
}

// ValidateCoordinates checks geographic latitude and longitude in degrees.
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.Abs(lat) >= MaxLatitude {
		return &ValidationError{
			Field:   "lat",
			Message: fmt.Sprintf("must be strictly between -%v and %v", MaxLatitude, MaxLatitude),
		}
	}
	if math.IsNaN(lon) || math.Abs(lon) > MaxLongitude {
		return &ValidationError{
			Field:   "lon",
			Message: fmt.Sprintf("must be between -%v and %v", MaxLongitude, MaxLongitude),
		}
	}
	return nil
}

// ValidateTimezoneOffset checks a UTC offset expressed in hours.
func ValidateTimezoneOffset(hours float64) error {
	if math.IsNaN(hours) || math.Abs(hours) > MaxTimezoneOffset {
		return &ValidationError{
			Field:   "timezone",
			Message: fmt.Sprintf("offset must be between -%v and %v hours", MaxTimezoneOffset, MaxTimezoneOffset),
		}
	}
	return nil
}
