package kundli

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"jyotish/internal/domain/entity"
	"jyotish/internal/ephemeris"
)

// Request is the birth data of one chart.
type Request struct {
	Dob      string             `json:"dob"`      // YYYY-MM-DD, local
	Tob      string             `json:"tob"`      // HH:MM:SS or HH:MM, local
	Lat      float64            `json:"lat"`      // degrees, north positive
	Lon      float64            `json:"lon"`      // degrees, east positive
	Timezone float64            `json:"timezone"` // hours east of UTC
	Ayanamsa ephemeris.Ayanamsa `json:"ayanamsa"`
}

// Validate checks every field and returns the first *entity.ValidationError.
func (r Request) Validate() error {
	if err := entity.ValidateBirthDate(r.Dob); err != nil {
		return err
	}
	if err := entity.ValidateBirthTime(r.Tob); err != nil {
		return err
	}
	if err := entity.ValidateCoordinates(r.Lat, r.Lon); err != nil {
		return err
	}
	if err := entity.ValidateTimezoneOffset(r.Timezone); err != nil {
		return err
	}
	if !r.Ayanamsa.IsValid() {
		return &entity.ValidationError{Field: "ayanamsa", Message: "unsupported ayanamsa " + strconv.Itoa(int(r.Ayanamsa))}
	}
	return nil
}

// normalizedTob pads HH:MM to HH:MM:SS so both forms share a fingerprint.
func (r Request) normalizedTob() string {
	tob := strings.TrimSpace(r.Tob)
	if strings.Count(tob, ":") == 1 {
		return tob + ":00"
	}
	return tob
}

// Fingerprint returns the cache key of the chart this request produces:
// kundli:<version>:<sha256 of dob|tob|lat|lon|timezone|ayanamsa|house system>.
func (r Request) Fingerprint(engineVersion string, system ephemeris.HouseSystem) string {
	parts := []string{
		strings.TrimSpace(r.Dob),
		r.normalizedTob(),
		strconv.FormatFloat(r.Lat, 'f', -1, 64),
		strconv.FormatFloat(r.Lon, 'f', -1, 64),
		strconv.FormatFloat(r.Timezone, 'f', -1, 64),
		strconv.Itoa(int(r.Ayanamsa)),
		string(system),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return "kundli:" + engineVersion + ":" + hex.EncodeToString(sum[:])
}
