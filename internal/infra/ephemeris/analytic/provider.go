// Package analytic is a self-contained ephemeris.Provider built from
// closed-form series: Keplerian elements for the planets, a truncated lunar
// theory for the Moon and the mean lunar node for Rahu.
//
// Positions are good to a few hundredths of a degree for the Sun and Moon and
// a few tenths for the outer planets between 1800 and 2050, which is well
// inside the resolution of signs, nakshatras and padas.
package analytic

import (
	"errors"
	"fmt"
	"math"

	"jyotish/internal/astrotime"
	"jyotish/internal/domain/entity"
	"jyotish/internal/ephemeris"
)

const (
	deg = math.Pi / 180
	// AU in kilometres.
	auKm = 149597870.7
	// step used for the numerical longitude speed.
	speedStep = 0.5
)

var errModeNotSet = errors.New("sidereal mode not set")

// Provider computes positions analytically. It is cheap to construct; the
// zero value is usable once SetSiderealMode has been called.
type Provider struct {
	mode    ephemeris.Ayanamsa
	modeSet bool
}

// New returns a Provider with no sidereal mode selected.
func New() *Provider { return &Provider{} }

// Factory returns an ephemeris.Factory producing fresh analytic providers.
func Factory() ephemeris.Factory {
	return func() ephemeris.Provider { return New() }
}

// SetSiderealMode selects the ayanamsa used for all subsequent results.
func (p *Provider) SetSiderealMode(a ephemeris.Ayanamsa) error {
	if !a.IsValid() {
		return fmt.Errorf("set sidereal mode: %w: %s", ErrUnknownAyanamsa, a)
	}
	p.mode = a
	p.modeSet = true
	return nil
}

// AyanamsaValue implements ephemeris.AyanamsaReporter.
func (p *Provider) AyanamsaValue(jd float64) float64 {
	return ayanamsa(p.mode, jd)
}

// BodyPosition returns the sidereal geocentric position of body at jd.
func (p *Provider) BodyPosition(body entity.BodyID, jd float64) (ephemeris.Position, error) {
	if !p.modeSet {
		return ephemeris.Position{}, errModeNotSet
	}
	fn, ok := bodies[body]
	if !ok {
		return ephemeris.Position{}, fmt.Errorf("%w: %d", ephemeris.ErrUnknownBody, body)
	}

	c := fn(jd)
	before := fn(jd - speedStep)
	after := fn(jd + speedStep)
	speed := angleDiff(after.lon, before.lon) / (2 * speedStep)

	return ephemeris.Position{
		Longitude: astrotime.NormalizeDegrees(c.lon - ayanamsa(p.mode, jd)),
		Latitude:  c.lat,
		Distance:  c.dist,
		Speed:     speed,
	}, nil
}

// HouseCusps returns whole-sign cusps. Other systems are rejected.
func (p *Provider) HouseCusps(jd, lat, lon float64, system ephemeris.HouseSystem, sidereal bool) (ephemeris.Cusps, error) {
	if system != ephemeris.HouseWholeSign {
		return ephemeris.Cusps{}, fmt.Errorf("%w: %q", ephemeris.ErrUnsupportedHouseSystem, system)
	}
	if sidereal && !p.modeSet {
		return ephemeris.Cusps{}, errModeNotSet
	}
	if lat <= -90 || lat >= 90 {
		return ephemeris.Cusps{}, fmt.Errorf("house cusps: latitude %v out of range", lat)
	}

	armc := astrotime.LocalSiderealTime(jd, lon)
	eps := astrotime.MeanObliquity(jd) + nutationObliquity(jd)
	asc := ascendant(armc, eps, lat)
	mc := midheaven(armc, eps)
	if sidereal {
		ay := ayanamsa(p.mode, jd)
		asc = astrotime.NormalizeDegrees(asc - ay)
		mc = astrotime.NormalizeDegrees(mc - ay)
	}

	out := ephemeris.Cusps{Ascendant: asc, MC: mc, ARMC: armc}
	first := math.Floor(asc/30) * 30
	for i := range out.Cusps {
		out.Cusps[i] = astrotime.NormalizeDegrees(first + float64(i)*30)
	}
	return out, nil
}

// ascendant returns the ecliptic longitude rising on the eastern horizon.
func ascendant(armc, eps, lat float64) float64 {
	r := armc * deg
	e := eps * deg
	y := math.Cos(r)
	x := -(math.Sin(r)*math.Cos(e) + math.Tan(lat*deg)*math.Sin(e))
	return astrotime.NormalizeDegrees(math.Atan2(y, x) / deg)
}

// midheaven returns the ecliptic longitude culminating on the meridian.
func midheaven(armc, eps float64) float64 {
	r := armc * deg
	return astrotime.NormalizeDegrees(math.Atan2(math.Sin(r), math.Cos(r)*math.Cos(eps*deg)) / deg)
}

// angleDiff returns a-b wrapped into (-180, 180].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

var _ ephemeris.Provider = (*Provider)(nil)
var _ ephemeris.AyanamsaReporter = (*Provider)(nil)
