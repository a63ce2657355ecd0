// Package vedic resolves the table-driven symbolic attributes of a chart.
//
// Nakshatra arguments are 0-based (0..26); sign arguments are 1-based (1..12).
// Lookups never fail: misses resolve to Unknown or to the empty Ghatak bundle.
package vedic

import (
	"fmt"

	"jyotish/internal/domain/entity"
)

// Unknown is returned for keys missing from a table.
const Unknown = "Unknown"

// NakshatraName returns the name of a 0-based nakshatra index, or Unknown.
func NakshatraName(idx int) string {
	if idx < 0 || idx >= len(nakshatras) {
		return Unknown
	}
	return nakshatras[idx]
}

// NakshatraLord returns the Vimshottari lord of a 0-based nakshatra index.
func NakshatraLord(idx int) string {
	if idx < 0 || idx >= len(nakshatras) {
		return Unknown
	}
	return nakshatraLords[idx%9]
}

// SignName returns the name of a 1-based sign, or Unknown.
func SignName(sign int) string {
	if sign < 1 || sign > 12 {
		return Unknown
	}
	return signs[sign-1]
}

// SignLord returns the ruling planet of a 1-based sign, or Unknown.
func SignLord(sign int) string {
	if sign < 1 || sign > 12 {
		return Unknown
	}
	return signLords[sign-1]
}

func lookup[K comparable](m map[K]string, k K) string {
	if v, ok := m[k]; ok {
		return v
	}
	return Unknown
}

// Resolve returns the Avakahada attributes for a 0-based nakshatra and a 1-based sign.
func Resolve(nakshatra, sign int) entity.VedicAttributes {
	name := NakshatraName(nakshatra)
	return entity.VedicAttributes{
		Gana:   lookup(ganaByNakshatra, name),
		Yoni:   lookup(yoniByNakshatra, name),
		Nadi:   lookup(nadiByNakshatra, name),
		Varan:  lookup(varanBySign, sign),
		Vashya: lookup(vashyaBySign, sign),
		Varga:  Unknown,
		Yunja:  Unknown,
		Hansak: Unknown,
		Paya:   Unknown,
	}
}

// Ghatak returns the Ghatak Chakra entry for a 1-based moon sign.
// Unknown signs yield the empty bundle.
func Ghatak(sign int) entity.Ghatak {
	g, ok := ghatakBySign[sign]
	if !ok {
		return entity.Ghatak{}
	}
	return entity.Ghatak{Month: g.month, Tithi: g.tithi, Day: g.day, Nakshatra: g.nakshatra}
}

// Charan formats a nakshatra and pada as printed in a kundli, e.g. "Rohini 2".
// nakshatra is 0-based.
func Charan(nakshatra, pada int) string {
	return fmt.Sprintf("%s %d", NakshatraName(nakshatra), pada)
}
