// Package entity defines the value objects of a Vedic chart: celestial bodies,
// houses, the Dasha period tree, Panchang and the symbolic attributes, together
// with the domain errors shared by the engine and the service layer.
package entity

// BodyID identifies a celestial body. Values follow the Swiss Ephemeris
// numbering so that provider implementations can pass them through.
type BodyID int

// Body identifiers used by the chart.
const (
	Sun     BodyID = 0
	Moon    BodyID = 1
	Mercury BodyID = 2
	Venus   BodyID = 3
	Mars    BodyID = 4
	Jupiter BodyID = 5
	Saturn  BodyID = 6
	Rahu    BodyID = 10 // mean lunar node
	Ketu    BodyID = 100
)

// Body is a celestial body placed in the sidereal zodiac.
//
// House is assigned in a second pass once the ascendant is known; until then it is zero.
type Body struct {
	ID         BodyID  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Longitude  float64 `json:"longitude" yaml:"longitude"`
	Latitude   float64 `json:"latitude" yaml:"latitude"`
	Distance   float64 `json:"distance" yaml:"distance"`
	Speed      float64 `json:"speed" yaml:"speed"`
	Sign       int     `json:"sign" yaml:"sign"`
	House      int     `json:"house" yaml:"house"`
	Nakshatra  int     `json:"nakshatra" yaml:"nakshatra"`
	Pada       int     `json:"pada" yaml:"pada"`
	Retrograde bool    `json:"is_retrograde" yaml:"is_retrograde"`
}

// House is a whole-sign house with its cusp longitude.
type House struct {
	Number    int     `json:"number" yaml:"number"`
	Sign      int     `json:"sign" yaml:"sign"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}
