// Package panchang derives weekday, tithi, yoga and karan from the sidereal
// longitudes of the Sun and Moon and the local calendar date.
package panchang

import (
	"math"
	"time"

	"jyotish/internal/domain/entity"
)

var tithis = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami", "Shashti", "Saptami", "Ashtami",
	"Navami", "Dashami", "Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

var yogas = [27]string{
	"Vishkumbha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda", "Sukarma", "Dhriti",
	"Shula", "Ganda", "Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata",
	"Variyan", "Parigha", "Shiva", "Siddha", "Sadhya", "Shubha", "Shukla", "Brahma", "Indra", "Vaidhriti",
}

// movable karans repeat eight times through the lunar month.
var movableKarans = [7]string{"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti"}

var days = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const (
	tithiSpan = 12.0
	karanSpan = 6.0
	yogaSpan  = 360.0 / 27.0

	purnimaIndex  = 14
	amavasyaIndex = 29
)

// Compute returns the Panchang for the given sidereal Sun and Moon longitudes
// and the observer's local calendar date.
func Compute(sun, moon float64, date time.Time) entity.Panchang {
	diff := Elongation(sun, moon)
	return entity.Panchang{
		Day:   Weekday(date),
		Tithi: TithiName(TithiIndex(diff)),
		Yoga:  YogaName(YogaIndex(sun, moon)),
		Karan: KaranName(KaranIndex(diff)),
	}
}

// Weekday returns the day name of date, Monday first.
func Weekday(date time.Time) string {
	// time.Weekday is Sunday=0; shift to Monday=0.
	return days[(int(date.Weekday())+6)%7]
}

// Elongation returns (moon - sun) mod 360 in [0, 360).
func Elongation(sun, moon float64) float64 {
	diff := math.Mod(moon-sun, 360)
	if diff < 0 {
		diff += 360
	}
	if diff >= 360 {
		diff = 0
	}
	return diff
}

// TithiIndex returns the 0-based lunar day (0..29) for an elongation.
func TithiIndex(diff float64) int {
	return int(diff / tithiSpan)
}

// Paksha returns the lunar fortnight of a tithi index.
func Paksha(idx int) string {
	if idx < 15 {
		return "Shukla"
	}
	return "Krishna"
}

// TithiName names a tithi index. Index 14 is always Purnima and 29 always Amavasya.
func TithiName(idx int) string {
	switch idx {
	case purnimaIndex:
		return "Purnima"
	case amavasyaIndex:
		return "Amavasya"
	}
	return Paksha(idx) + " " + tithis[idx%15]
}

// YogaIndex returns the 0-based yoga (0..26) for the given longitudes.
func YogaIndex(sun, moon float64) int {
	total := sun + moon
	if total >= 360 {
		total -= 360
	}
	return int(total/yogaSpan) % 27
}

// YogaName names a yoga index.
func YogaName(idx int) string {
	return yogas[idx%27]
}

// KaranIndex returns the 0-based half-tithi (0..59) for an elongation.
func KaranIndex(diff float64) int {
	return int(diff / karanSpan)
}

// KaranName names a karan index. Index 0 and 57..59 are the fixed karans;
// 1..56 cycle through the seven movable ones.
func KaranName(idx int) string {
	switch {
	case idx == 0:
		return "Kimstughna"
	case idx >= 1 && idx <= 56:
		return movableKarans[(idx-1)%7]
	case idx == 57:
		return "Shakuni"
	case idx == 58:
		return "Chatushpada"
	default:
		return "Naga"
	}
}
