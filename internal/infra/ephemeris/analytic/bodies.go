package analytic

import (
	"math"

	"jyotish/internal/astrotime"
	"jyotish/internal/domain/entity"
)

// coord is a tropical geocentric ecliptic position of date.
type coord struct {
	lon, lat, dist float64
}

var bodies = map[entity.BodyID]func(jd float64) coord{
	entity.Sun:     sun,
	entity.Moon:    moon,
	entity.Mercury: planet(mercury),
	entity.Venus:   planet(venus),
	entity.Mars:    planet(mars),
	entity.Jupiter: planet(jupiter),
	entity.Saturn:  planet(saturn),
	entity.Rahu:    meanNode,
}

// sun returns the apparent solar position (low-precision solar theory).
func sun(jd float64) coord {
	t := astrotime.Centuries(jd)
	l0 := 280.46646 + t*(36000.76983+t*0.0003032)
	m := (357.52911 + t*(35999.05029-t*0.0001537)) * deg
	e := 0.016708634 - t*(0.000042037+t*0.0000001267)
	c := (1.914602-t*(0.004817+t*0.000014))*math.Sin(m) +
		(0.019993-t*0.000101)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)
	v := m + c*deg
	r := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(v))
	lon := l0 + c - 0.00569 + nutationLongitude(jd)
	return coord{lon: astrotime.NormalizeDegrees(lon), dist: r}
}

// meanNode returns the mean ascending lunar node.
func meanNode(jd float64) coord {
	t := astrotime.Centuries(jd)
	om := 125.0445479 - t*(1934.1362891-t*(0.0020754+t*(1.0/467441-t/60616000)))
	return coord{lon: astrotime.NormalizeDegrees(om), dist: moonMeanDistanceAU}
}

// nutationLongitude returns the dominant terms of nutation in longitude in degrees.
func nutationLongitude(jd float64) float64 {
	t := astrotime.Centuries(jd)
	om := (125.04452 - 1934.136261*t) * deg
	ls := (280.4665 + 36000.7698*t) * deg
	lm := (218.3165 + 481267.8813*t) * deg
	arcsec := -17.20*math.Sin(om) - 1.32*math.Sin(2*ls) - 0.23*math.Sin(2*lm) + 0.21*math.Sin(2*om)
	return arcsec / 3600
}

// nutationObliquity returns the dominant terms of nutation in obliquity in degrees.
func nutationObliquity(jd float64) float64 {
	t := astrotime.Centuries(jd)
	om := (125.04452 - 1934.136261*t) * deg
	ls := (280.4665 + 36000.7698*t) * deg
	lm := (218.3165 + 481267.8813*t) * deg
	arcsec := 9.20*math.Cos(om) + 0.57*math.Cos(2*ls) + 0.10*math.Cos(2*lm) - 0.09*math.Cos(2*om)
	return arcsec / 3600
}
