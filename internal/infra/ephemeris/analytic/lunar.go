package analytic

import (
	"math"

	"jyotish/internal/astrotime"
)

const moonMeanDistanceAU = 385000.56 / auKm

// lunarTerm is one periodic term: multiples of D, M, M', F and its coefficient.
// Terms involving M are scaled by the eccentricity factor E^|m|.
type lunarTerm struct {
	d, m, mp, f int
	coef        float64
}

// Longitude terms in 1e-6 degree.
var lunarLongitude = []lunarTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689},
	{2, 0, -1, 2, -2602},
	{2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348},
	{2, -2, 0, 0, 2236},
	{0, 1, 2, 0, -2120},
	{0, 2, 0, 0, -2069},
}

// Distance terms in metres (cosine series).
var lunarDistance = []lunarTerm{
	{0, 0, 1, 0, -20905355},
	{2, 0, -1, 0, -3699111},
	{2, 0, 0, 0, -2955968},
	{0, 0, 2, 0, -569925},
	{0, 1, 0, 0, 48888},
	{0, 0, 0, 2, -3149},
	{2, 0, -2, 0, 246158},
	{2, -1, -1, 0, -152138},
	{2, 0, 1, 0, -170733},
	{2, -1, 0, 0, -204586},
	{0, 1, -1, 0, -129620},
	{1, 0, 0, 0, 108743},
	{0, 1, 1, 0, 104755},
	{2, 0, 0, -2, 10321},
	{0, 0, 1, -2, 79661},
	{4, 0, -1, 0, -34782},
	{0, 0, 3, 0, -23210},
	{4, 0, -2, 0, -21636},
	{2, 1, -1, 0, 24208},
	{2, 1, 0, 0, 30824},
	{1, 0, -1, 0, -8379},
	{1, 1, 0, 0, -16675},
	{2, -1, 1, 0, -12831},
}

// Latitude terms in 1e-6 degree.
var lunarLatitude = []lunarTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
	{2, -1, 0, -1, 8216},
	{2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
	{2, 1, 0, -1, -3359},
	{2, -1, -1, 1, 2463},
}

// moon returns the apparent geocentric lunar position.
func moon(jd float64) coord {
	t := astrotime.Centuries(jd)

	lp := 218.3164477 + t*(481267.88123421-t*(0.0015786-t*(1.0/538841-t/65194000)))
	d := (297.8501921 + t*(445267.1114034-t*(0.0018819-t*(1.0/545868-t/113065000)))) * deg
	m := (357.5291092 + t*(35999.0502909-t*(0.0001536-t/24490000))) * deg
	mp := (134.9633964 + t*(477198.8675055+t*(0.0087414+t*(1.0/69699-t/14712000)))) * deg
	f := (93.2720950 + t*(483202.0175233-t*(0.0036539+t*(1.0/3526000-t/863310000)))) * deg
	e := 1 - t*(0.002516+t*0.0000074)

	a1 := (119.75 + 131.849*t) * deg
	a2 := (53.09 + 479264.290*t) * deg
	a3 := (313.45 + 481266.484*t) * deg
	lpr := lp * deg

	arg := func(term lunarTerm) (float64, float64) {
		x := float64(term.d)*d + float64(term.m)*m + float64(term.mp)*mp + float64(term.f)*f
		scale := 1.0
		switch term.m {
		case 1, -1:
			scale = e
		case 2, -2:
			scale = e * e
		}
		return x, scale
	}

	var sl, sr, sb float64
	for _, term := range lunarLongitude {
		x, s := arg(term)
		sl += term.coef * s * math.Sin(x)
	}
	for _, term := range lunarDistance {
		x, s := arg(term)
		sr += term.coef * s * math.Cos(x)
	}
	for _, term := range lunarLatitude {
		x, s := arg(term)
		sb += term.coef * s * math.Sin(x)
	}

	sl += 3958*math.Sin(a1) + 1962*math.Sin(lpr-f) + 318*math.Sin(a2)
	sb += -2235*math.Sin(lpr) + 382*math.Sin(a3) + 175*math.Sin(a1-f) +
		175*math.Sin(a1+f) + 127*math.Sin(lpr-mp) - 115*math.Sin(lpr+mp)

	lon := lp + sl/1e6 + nutationLongitude(jd)
	return coord{
		lon:  astrotime.NormalizeDegrees(lon),
		lat:  sb / 1e6,
		dist: (385000.56 + sr/1000) / auKm,
	}
}
