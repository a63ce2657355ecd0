// Package kundli provides the chart generation use case: request
// validation, two-tier caching, request collapsing, and guarded computation
// on top of the chart engine.
package kundli

import "errors"

// Sentinel errors for chart use case operations.
var (
	// ErrEphemerisUnavailable indicates that the ephemeris circuit is open and
	// the chart could not be computed right now. Callers may retry later.
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")
)
