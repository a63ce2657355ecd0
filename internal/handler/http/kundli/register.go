package kundli

import (
	"net/http"

	"jyotish/internal/ephemeris"
)

// Register mounts the chart routes on mux.
func Register(mux *http.ServeMux, svc ChartService, defaultAyanamsa ephemeris.Ayanamsa) {
	mux.Handle("POST /api/v1/kundli/generate", GenerateHandler{Svc: svc, DefaultAyanamsa: defaultAyanamsa})
	mux.Handle("GET /api/v1/kundli/dasha/current", CurrentDashaHandler{Svc: svc, DefaultAyanamsa: defaultAyanamsa})
}
