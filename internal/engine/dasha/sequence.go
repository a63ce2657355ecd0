package dasha

import (
	"math"
	"time"
)

// Lord is one entry of the Vimshottari sequence.
type Lord struct {
	Planet string
	Years  float64
}

// Sequence is the Vimshottari order of lords with their full durations.
// The durations sum to CycleYears.
var Sequence = [9]Lord{
	{"Ketu", 7},
	{"Venus", 20},
	{"Sun", 6},
	{"Moon", 10},
	{"Mars", 7},
	{"Rahu", 18},
	{"Jupiter", 16},
	{"Saturn", 19},
	{"Mercury", 17},
}

const (
	// CycleYears is the length of one full Vimshottari cycle.
	CycleYears = 120.0

	// DaysPerYear converts fractional years to days. It is the mean Gregorian
	// year, not calendar-exact.
	DaysPerYear = 365.2425

	nakshatraSpan = 360.0 / 27.0
)

// LordIndex returns the position of planet in Sequence, or -1.
func LordIndex(planet string) int {
	for i, l := range Sequence {
		if l.Planet == planet {
			return i
		}
	}
	return -1
}

// AddYears shifts t by a fractional number of years of DaysPerYear days.
func AddYears(t time.Time, years float64) time.Time {
	return t.Add(YearsToDuration(years))
}

// YearsToDuration converts fractional years to a time.Duration.
func YearsToDuration(years float64) time.Duration {
	return time.Duration(years * DaysPerYear * float64(24*time.Hour))
}

// Balance locates the moon in its nakshatra and returns the index in Sequence
// of the starting lord together with the fraction of the nakshatra still to be
// traversed, in (0, 1].
func Balance(moonLongitude float64) (lordIdx int, fractionRemaining float64) {
	fraction := moonLongitude / nakshatraSpan
	whole := math.Floor(fraction)
	nakshatra := int(whole) % 27
	if nakshatra < 0 {
		nakshatra += 27
	}
	traversed := fraction - whole
	return nakshatra % 9, 1 - traversed
}
