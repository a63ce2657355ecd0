// Package ephemeris defines the capability interface the chart engine uses to
// obtain raw astronomical data. Implementations live under internal/infra/ephemeris;
// a deterministic stand-in for tests lives in ephemeristest.
package ephemeris

import (
	"errors"
	"fmt"

	"jyotish/internal/domain/entity"
)

// ErrUnsupportedHouseSystem is returned by providers asked for a house system they do not implement.
var ErrUnsupportedHouseSystem = errors.New("unsupported house system")

// ErrUnknownBody is returned for body ids the provider cannot compute.
var ErrUnknownBody = errors.New("unknown body")

// Position is the raw output of a body query.
type Position struct {
	Longitude float64 // degrees, not necessarily normalized
	Latitude  float64 // degrees
	Distance  float64 // AU
	Speed     float64 // degrees/day in longitude, negative when retrograde
}

// Cusps is the raw output of a house query.
type Cusps struct {
	Cusps     [12]float64
	Ascendant float64
	MC        float64
	ARMC      float64
}

// HouseSystem is a single-letter house system code.
type HouseSystem string

// HouseWholeSign is the only system the engine interprets.
const HouseWholeSign HouseSystem = "W"

// Ayanamsa selects the sidereal reference frame.
type Ayanamsa int

// Supported ayanamsa ids (Swiss Ephemeris numbering).
const (
	FaganBradley Ayanamsa = 0
	Lahiri       Ayanamsa = 1
	Raman        Ayanamsa = 3
	Krishnamurti Ayanamsa = 5
)

// String returns the conventional name of the ayanamsa.
func (a Ayanamsa) String() string {
	switch a {
	case FaganBradley:
		return "fagan-bradley"
	case Lahiri:
		return "lahiri"
	case Raman:
		return "raman"
	case Krishnamurti:
		return "krishnamurti"
	default:
		return fmt.Sprintf("ayanamsa(%d)", int(a))
	}
}

// IsValid reports whether a is one of the supported ids.
func (a Ayanamsa) IsValid() bool {
	switch a {
	case FaganBradley, Lahiri, Raman, Krishnamurti:
		return true
	}
	return false
}

// Provider computes sidereal positions and house cusps.
//
// SetSiderealMode must be called before BodyPosition and HouseCusps. Because it
// mutates provider state, a Provider instance must not be shared between
// concurrent chart computations; use a Factory to obtain one per computation.
type Provider interface {
	SetSiderealMode(ayanamsa Ayanamsa) error
	BodyPosition(body entity.BodyID, julianDay float64) (Position, error)
	HouseCusps(julianDay, lat, lon float64, system HouseSystem, sidereal bool) (Cusps, error)
}

// AyanamsaReporter is implemented by providers that can report the ayanamsa
// value in degrees for a given Julian day.
type AyanamsaReporter interface {
	AyanamsaValue(julianDay float64) float64
}

// Factory returns a fresh Provider.
type Factory func() Provider
