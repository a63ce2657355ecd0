// Package chart aggregates the engine components into a single chart
// computation on top of an injected ephemeris provider.
package chart

import (
	"time"

	"jyotish/internal/domain/entity"
	"jyotish/internal/engine/dasha"
	"jyotish/internal/engine/house"
	"jyotish/internal/engine/panchang"
	"jyotish/internal/engine/position"
	"jyotish/internal/engine/vedic"
	"jyotish/internal/ephemeris"
)

// planets are queried from the provider in this order; Ketu is appended last.
var planets = []struct {
	id   entity.BodyID
	name string
}{
	{entity.Sun, "Sun"},
	{entity.Moon, "Moon"},
	{entity.Mars, "Mars"},
	{entity.Mercury, "Mercury"},
	{entity.Jupiter, "Jupiter"},
	{entity.Venus, "Venus"},
	{entity.Saturn, "Saturn"},
	{entity.Rahu, "Rahu"},
}

// Input is a pre-validated chart request.
type Input struct {
	JulianDay float64 // UT
	Latitude  float64
	Longitude float64
	Ayanamsa  ephemeris.Ayanamsa
	// Birth is the birth instant in the observer's local zone. Its calendar
	// date is used for the weekday.
	Birth time.Time
}

// Calculator computes charts. A Calculator is bound to one provider and
// must not be used concurrently when the provider is stateful.
type Calculator struct {
	Provider    ephemeris.Provider
	Dasha       dasha.Builder
	HouseSystem ephemeris.HouseSystem // defaults to whole sign
}

// Compute returns the full chart or an error; it never returns a partial chart.
// Provider failures are wrapped in *entity.EphemerisError.
func (c Calculator) Compute(in Input) (*entity.Chart, error) {
	if err := c.Provider.SetSiderealMode(in.Ayanamsa); err != nil {
		return nil, &entity.EphemerisError{Op: "set_sidereal_mode", Err: err}
	}

	bodies, err := c.bodies(in.JulianDay)
	if err != nil {
		return nil, err
	}

	system := c.HouseSystem
	if system == "" {
		system = ephemeris.HouseWholeSign
	}
	cusps, err := c.Provider.HouseCusps(in.JulianDay, in.Latitude, in.Longitude, system, true)
	if err != nil {
		return nil, &entity.EphemerisError{Op: "house_cusps", Err: err}
	}
	ascendant := position.Normalize(cusps.Ascendant)
	houses := house.FromCusps(cusps)
	house.Assign(bodies, ascendant)

	sun, moon := bodies[0], bodies[1]
	moonNakshatra := moon.Nakshatra - 1 // tables are 0-based

	ascSign := house.AscendantSign(ascendant)

	out := &entity.Chart{
		Ascendant:     ascendant,
		AscendantSign: ascSign,
		Houses:        houses,
		Bodies:        bodies,
		JulianDay:     in.JulianDay,
		Dasha:         c.Dasha.Build(moon.Longitude, in.Birth),
		Panchang:      panchang.Compute(sun.Longitude, moon.Longitude, in.Birth),
		Attributes:    vedic.Resolve(moonNakshatra, moon.Sign),
		Ghatak:        vedic.Ghatak(moon.Sign),
		BasicDetails: entity.BasicDetails{
			AscendantLord:   vedic.SignLord(ascSign),
			RasiLord:        vedic.SignLord(moon.Sign),
			NakshatraCharan: vedic.Charan(moonNakshatra, moon.Pada),
			NakshatraLord:   vedic.NakshatraLord(moonNakshatra),
		},
	}
	// Without a reported ayanamsa the tropical sign is unknown; leave it empty.
	if r, ok := c.Provider.(ephemeris.AyanamsaReporter); ok {
		out.Ayanamsa = r.AyanamsaValue(in.JulianDay)
		out.BasicDetails.SunSignWest = vedic.SignName(position.Sign(position.Normalize(sun.Longitude + out.Ayanamsa)))
	}
	return out, nil
}

func (c Calculator) bodies(jd float64) ([]entity.Body, error) {
	bodies := make([]entity.Body, 0, len(planets)+1)
	for _, p := range planets {
		pos, err := c.Provider.BodyPosition(p.id, jd)
		if err != nil {
			return nil, &entity.EphemerisError{Op: "body_position", Body: p.name, Err: err}
		}
		bodies = append(bodies, position.NewBody(p.id, p.name, pos))
	}
	rahu := bodies[len(bodies)-1]
	return append(bodies, position.Ketu(rahu)), nil
}
