// Package position derives zodiacal placements (sign, nakshatra, pada) from
// sidereal ecliptic longitudes and synthesizes Ketu from Rahu.
package position

import (
	"math"

	"jyotish/internal/domain/entity"
	"jyotish/internal/ephemeris"
)

const (
	// SignSpan is the width of a zodiac sign in degrees.
	SignSpan = 30.0
	// NakshatraSpan is the width of a nakshatra (13°20').
	NakshatraSpan = 360.0 / 27.0
	// PadaSpan is the width of a pada (3°20').
	PadaSpan = 360.0 / 108.0
)

// Placement is the symbolic position of a longitude.
type Placement struct {
	Sign      int // 1..12
	Nakshatra int // 1..27
	Pada      int // 1..4
}

// Normalize maps any longitude into [0, 360).
func Normalize(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	// math.Mod of a tiny negative value plus 360 can round up to 360.
	if lon >= 360 {
		lon = 0
	}
	return lon
}

// Sign returns floor(lon/30)+1 for lon in [0,360).
func Sign(lon float64) int {
	return int(lon/SignSpan) + 1
}

// NakshatraIndex returns the 0-based nakshatra index of lon.
func NakshatraIndex(lon float64) int {
	return int(lon / NakshatraSpan)
}

// Pada returns the 1-based quarter of the nakshatra lon falls in.
func Pada(lon float64) int {
	return int(math.Mod(lon, NakshatraSpan)/PadaSpan) + 1
}

// Derive computes the placement of a longitude already normalized into [0,360).
func Derive(lon float64) Placement {
	return Placement{
		Sign:      Sign(lon),
		Nakshatra: NakshatraIndex(lon) + 1,
		Pada:      Pada(lon),
	}
}

// NewBody builds a placed body from a raw provider position.
// The house is left at zero for house.Assign.
func NewBody(id entity.BodyID, name string, pos ephemeris.Position) entity.Body {
	lon := Normalize(pos.Longitude)
	p := Derive(lon)
	return entity.Body{
		ID:         id,
		Name:       name,
		Longitude:  lon,
		Latitude:   pos.Latitude,
		Distance:   pos.Distance,
		Speed:      pos.Speed,
		Sign:       p.Sign,
		Nakshatra:  p.Nakshatra,
		Pada:       p.Pada,
		Retrograde: pos.Speed < 0,
	}
}

// Ketu synthesizes the south node from Rahu: opposite longitude, inverted
// latitude, same speed and retrograde flag.
func Ketu(rahu entity.Body) entity.Body {
	lon := math.Mod(rahu.Longitude+180, 360)
	p := Derive(lon)
	return entity.Body{
		ID:         entity.Ketu,
		Name:       "Ketu",
		Longitude:  lon,
		Latitude:   -rahu.Latitude,
		Distance:   rahu.Distance,
		Speed:      rahu.Speed,
		Sign:       p.Sign,
		Nakshatra:  p.Nakshatra,
		Pada:       p.Pada,
		Retrograde: rahu.Retrograde,
	}
}
