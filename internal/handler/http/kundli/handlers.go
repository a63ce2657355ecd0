package kundli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"jyotish/internal/domain/entity"
	"jyotish/internal/ephemeris"
	"jyotish/internal/handler/http/respond"
	kundliUC "jyotish/internal/usecase/kundli"
)

// ChartService is the use case behind the handlers.
type ChartService interface {
	Generate(ctx context.Context, req kundliUC.Request) (*entity.Chart, error)
	CurrentDasha(ctx context.Context, req kundliUC.Request, at time.Time) ([]entity.DashaPeriod, error)
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	var mbe *http.MaxBytesError
	switch {
	case errors.As(err, &mbe):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, kundliUC.ErrEphemerisUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GenerateHandler serves POST /api/v1/kundli/generate.
type GenerateHandler struct {
	Svc             ChartService
	DefaultAyanamsa ephemeris.Ayanamsa
}

func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body GenerateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			respond.SafeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body too large"))
			return
		}
		respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err))
		return
	}

	req, err := body.toRequest(h.DefaultAyanamsa)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	chart, err := h.Svc.Generate(r.Context(), req)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, NewChartResponse(chart))
}

// CurrentDashaHandler serves GET /api/v1/kundli/dasha/current. Birth data
// comes from the query string; at is RFC 3339 and defaults to now.
type CurrentDashaHandler struct {
	Svc             ChartService
	DefaultAyanamsa ephemeris.Ayanamsa
	Now             func() time.Time
}

func (h CurrentDashaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, at, err := h.parseQuery(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	chain, err := h.Svc.CurrentDasha(r.Context(), req, at)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	out := CurrentDashaResponse{At: at, Periods: make([]PeriodDTO, 0, len(chain))}
	for _, p := range chain {
		out.Periods = append(out.Periods, PeriodDTO{
			Planet:        p.Planet,
			Level:         p.Level,
			Start:         p.Start,
			End:           p.End,
			DurationYears: p.DurationYears,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h CurrentDashaHandler) parseQuery(r *http.Request) (kundliUC.Request, time.Time, error) {
	q := r.URL.Query()
	var body GenerateRequest
	body.Dob = q.Get("dob")
	body.Tob = q.Get("tob")

	floats := []struct {
		name string
		dst  **float64
	}{
		{"lat", &body.Lat},
		{"lon", &body.Lon},
		{"timezone", &body.Timezone},
	}
	for _, f := range floats {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return kundliUC.Request{}, time.Time{}, &entity.ValidationError{Field: f.name, Message: "must be a number"}
		}
		*f.dst = &v
	}
	if raw := q.Get("ayanamsa"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return kundliUC.Request{}, time.Time{}, &entity.ValidationError{Field: "ayanamsa", Message: "must be an integer"}
		}
		body.Ayanamsa = &v
	}

	req, err := body.toRequest(h.DefaultAyanamsa)
	if err != nil {
		return kundliUC.Request{}, time.Time{}, err
	}

	at := time.Now()
	if h.Now != nil {
		at = h.Now()
	}
	if raw := q.Get("at"); raw != "" {
		at, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return kundliUC.Request{}, time.Time{}, &entity.ValidationError{Field: "at", Message: "must be an RFC 3339 timestamp"}
		}
	}
	return req, at, nil
}
