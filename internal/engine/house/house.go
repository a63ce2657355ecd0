// Package house maps bodies into whole-sign houses.
package house

import (
	"jyotish/internal/domain/entity"
	"jyotish/internal/engine/position"
	"jyotish/internal/ephemeris"
)

// AscendantSign returns the sign (1..12) of the ascendant longitude.
func AscendantSign(ascendant float64) int {
	return position.Sign(position.Normalize(ascendant))
}

// Of returns the whole-sign house (1..12) of a sign relative to the ascendant sign.
func Of(sign, ascSign int) int {
	h := sign - ascSign + 1
	if h <= 0 {
		h += 12
	}
	return h
}

// FromCusps converts provider cusps into the 12 houses of the chart.
func FromCusps(c ephemeris.Cusps) []entity.House {
	houses := make([]entity.House, 0, len(c.Cusps))
	for i, lon := range c.Cusps {
		lon = position.Normalize(lon)
		houses = append(houses, entity.House{
			Number:    i + 1,
			Sign:      position.Sign(lon),
			Longitude: lon,
		})
	}
	return houses
}

// Assign fills in the House field of every body. This is the second pass of
// body construction and the only mutation bodies undergo.
func Assign(bodies []entity.Body, ascendant float64) {
	asc := AscendantSign(ascendant)
	for i := range bodies {
		bodies[i].House = Of(bodies[i].Sign, asc)
	}
}
