// Package astrotime converts civil time to the astronomical time scales the
// ephemeris works in: Julian day, Julian centuries, sidereal time and obliquity.
//
// All conversions use the proleptic Gregorian calendar and treat UT as UTC.
package astrotime

import (
	"fmt"
	"math"
	"time"
)

// J2000 is the Julian day of 2000-01-01 12:00 TT.
const J2000 = 2451545.0

const (
	dobLayout = "2006-01-02"
	tobLayout = "15:04:05"
)

// JulianDay returns the Julian day of t in UT.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y, m := t.Year(), int(t.Month())
	hours := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600 +
		float64(t.Nanosecond())/3.6e12
	d := float64(t.Day()) + hours/24
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + d + b - 1524.5
}

// FromJulianDay converts a Julian day back to a UTC time, rounded to the microsecond.
func FromJulianDay(jd float64) time.Time {
	days := jd - J2000
	ns := days * float64(24*time.Hour)
	base := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(ns)).Round(time.Microsecond)
}

// Centuries returns Julian centuries since J2000.
func Centuries(jd float64) float64 {
	return (jd - J2000) / 36525
}

// GreenwichSiderealTime returns the mean sidereal time at Greenwich in degrees [0,360).
func GreenwichSiderealTime(jd float64) float64 {
	t := Centuries(jd)
	theta := 280.46061837 + 360.98564736629*(jd-J2000) + 0.000387933*t*t - t*t*t/38710000
	return NormalizeDegrees(theta)
}

// LocalSiderealTime returns the local mean sidereal time in degrees for an
// east-positive geographic longitude.
func LocalSiderealTime(jd, longitude float64) float64 {
	return NormalizeDegrees(GreenwichSiderealTime(jd) + longitude)
}

// MeanObliquity returns the mean obliquity of the ecliptic in degrees.
func MeanObliquity(jd float64) float64 {
	t := Centuries(jd)
	seconds := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return 23 + (26+seconds/60)/60
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Zone returns a fixed zone for an offset in hours, e.g. 5.5 → UTC+05:30.
func Zone(offsetHours float64) *time.Location {
	secs := int(math.Round(offsetHours * 3600))
	sign := '+'
	abs := secs
	if secs < 0 {
		sign = '-'
		abs = -secs
	}
	name := fmt.Sprintf("UTC%c%02d:%02d", sign, abs/3600, (abs%3600)/60)
	return time.FixedZone(name, secs)
}

// ParseBirth parses a local birth date (YYYY-MM-DD) and time (HH:MM:SS or
// HH:MM) at the given UTC offset in hours.
func ParseBirth(dob, tob string, offsetHours float64) (time.Time, error) {
	loc := Zone(offsetHours)
	t, err := time.ParseInLocation(dobLayout+" "+tobLayout, dob+" "+tob, loc)
	if err == nil {
		return t, nil
	}
	t, err2 := time.ParseInLocation(dobLayout+" 15:04", dob+" "+tob, loc)
	if err2 == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("parse birth time: %w", err)
}
