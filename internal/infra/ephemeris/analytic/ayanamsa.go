package analytic

import (
	"errors"

	"jyotish/internal/astrotime"
	"jyotish/internal/ephemeris"
)

// ErrUnknownAyanamsa is returned when SetSiderealMode gets an unsupported id.
var ErrUnknownAyanamsa = errors.New("unknown ayanamsa")

// Ayanamsa values at J2000 in degrees.
var ayanamsaAtJ2000 = map[ephemeris.Ayanamsa]float64{
	ephemeris.FaganBradley: 24.740300,
	ephemeris.Lahiri:       23.857092,
	ephemeris.Raman:        22.410791,
	ephemeris.Krishnamurti: 23.760240,
}

// ayanamsa returns the mean ayanamsa for mode at jd: the J2000 offset carried
// forward by general precession in longitude.
func ayanamsa(mode ephemeris.Ayanamsa, jd float64) float64 {
	return ayanamsaAtJ2000[mode] + precessionFromJ2000(jd)
}

// precessionFromJ2000 is the general precession in longitude since J2000 in degrees.
func precessionFromJ2000(jd float64) float64 {
	t := astrotime.Centuries(jd)
	return (5029.0966*t + 1.11113*t*t) / 3600
}
