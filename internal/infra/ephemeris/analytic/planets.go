package analytic

import (
	"math"

	"jyotish/internal/astrotime"
)

// elements are mean orbital elements referred to the J2000 ecliptic and
// equinox, with their rates per Julian century.
type elements struct {
	a, e, i, l, peri, node       float64
	da, de, di, dl, dperi, dnode float64
}

// Valid 1800-2050.
var (
	mercury = elements{
		0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081,
	}
	venus = elements{
		0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418,
	}
	earthMoon = elements{
		1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0,
		0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0,
	}
	mars = elements{
		1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343,
	}
	jupiter = elements{
		5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106,
	}
	saturn = elements{
		9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794,
	}
)

// heliocentric returns J2000 ecliptic rectangular coordinates in AU.
func (el elements) heliocentric(jd float64) (x, y, z float64) {
	t := astrotime.Centuries(jd)
	a := el.a + el.da*t
	e := el.e + el.de*t
	inc := (el.i + el.di*t) * deg
	l := el.l + el.dl*t
	peri := el.peri + el.dperi*t
	node := (el.node + el.dnode*t) * deg

	w := peri*deg - node
	m := astrotime.NormalizeDegrees(l-peri) * deg
	ea := kepler(m, e)

	xp := a * (math.Cos(ea) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ea)

	cw, sw := math.Cos(w), math.Sin(w)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(inc), math.Sin(inc)

	x = (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp
	y = (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp
	z = sw*si*xp + cw*si*yp
	return x, y, z
}

// kepler solves M = E - e sin E for E (radians) by Newton iteration.
func kepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)
	for i := 0; i < 30; i++ {
		delta := (ea - e*math.Sin(ea) - m) / (1 - e*math.Cos(ea))
		ea -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return ea
}

// planet returns the geocentric position function for a planet, precessed to
// the equinox of date.
func planet(el elements) func(jd float64) coord {
	return func(jd float64) coord {
		px, py, pz := el.heliocentric(jd)
		ex, ey, ez := earthMoon.heliocentric(jd)
		x, y, z := px-ex, py-ey, pz-ez

		dist := math.Sqrt(x*x + y*y + z*z)
		lon := math.Atan2(y, x)/deg + precessionFromJ2000(jd) + nutationLongitude(jd)
		lat := math.Asin(z/dist) / deg
		return coord{lon: astrotime.NormalizeDegrees(lon), lat: lat, dist: dist}
	}
}
