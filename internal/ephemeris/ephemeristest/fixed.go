// Package ephemeristest provides a deterministic ephemeris.Provider for tests.
package ephemeristest

import (
	"fmt"

	"jyotish/internal/domain/entity"
	"jyotish/internal/ephemeris"
)

// Fixed returns preconfigured positions regardless of the Julian day.
// The zero value answers every body at longitude 0 and an ascendant of 0.
type Fixed struct {
	Positions map[entity.BodyID]ephemeris.Position
	Cusps     ephemeris.Cusps
	Ayanamsa  float64

	// Error injection
	BodyErr  map[entity.BodyID]error
	CuspsErr error
	ModeErr  error

	// Recorded calls
	Mode      ephemeris.Ayanamsa
	ModeSet   bool
	BodyCalls []entity.BodyID
}

// New returns a Fixed provider with the given longitudes (speed 1°/day) and ascendant.
func New(longitudes map[entity.BodyID]float64, ascendant float64) *Fixed {
	f := &Fixed{Positions: make(map[entity.BodyID]ephemeris.Position, len(longitudes))}
	for id, lon := range longitudes {
		f.Positions[id] = ephemeris.Position{Longitude: lon, Distance: 1, Speed: 1}
	}
	f.Cusps = WholeSignCusps(ascendant)
	return f
}

// WholeSignCusps builds a cusp set whose cusps sit at the start of each sign
// counted from the ascendant sign.
func WholeSignCusps(ascendant float64) ephemeris.Cusps {
	c := ephemeris.Cusps{Ascendant: ascendant}
	first := float64(int(ascendant/30)) * 30
	for i := range c.Cusps {
		lon := first + float64(i)*30
		if lon >= 360 {
			lon -= 360
		}
		c.Cusps[i] = lon
	}
	return c
}

// SetSiderealMode records the requested mode.
func (f *Fixed) SetSiderealMode(a ephemeris.Ayanamsa) error {
	if f.ModeErr != nil {
		return f.ModeErr
	}
	f.Mode = a
	f.ModeSet = true
	return nil
}

// BodyPosition returns the configured position or the injected error.
func (f *Fixed) BodyPosition(body entity.BodyID, _ float64) (ephemeris.Position, error) {
	f.BodyCalls = append(f.BodyCalls, body)
	if err := f.BodyErr[body]; err != nil {
		return ephemeris.Position{}, err
	}
	if !f.ModeSet {
		return ephemeris.Position{}, fmt.Errorf("sidereal mode not set")
	}
	return f.Positions[body], nil
}

// HouseCusps returns the configured cusps or the injected error.
func (f *Fixed) HouseCusps(_, _, _ float64, system ephemeris.HouseSystem, _ bool) (ephemeris.Cusps, error) {
	if f.CuspsErr != nil {
		return ephemeris.Cusps{}, f.CuspsErr
	}
	if system != ephemeris.HouseWholeSign {
		return ephemeris.Cusps{}, ephemeris.ErrUnsupportedHouseSystem
	}
	return f.Cusps, nil
}

// AyanamsaValue returns the configured ayanamsa.
func (f *Fixed) AyanamsaValue(float64) float64 {
	return f.Ayanamsa
}
