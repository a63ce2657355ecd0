package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"jyotish/internal/handler/http/respond"
	"jyotish/internal/resilience/circuitbreaker"
)

// Health statuses.
const (
	StatusOK        = "ok"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string            `json:"status"`
	EngineVersion string            `json:"engine_version,omitempty"`
	Timestamp     string            `json:"timestamp"`
	Checks        map[string]string `json:"checks,omitempty"`
}

// HealthHandler reports service health. DB and Breaker are optional.
//
// An open ephemeris breaker degrades the service but keeps 200 so that load
// balancers keep routing cached charts; an unreachable store returns 503.
type HealthHandler struct {
	DB            *sql.DB
	Breaker       *circuitbreaker.CircuitBreaker
	EngineVersion string
	Now           func() time.Time
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	resp := HealthResponse{
		Status:        StatusOK,
		EngineVersion: h.EngineVersion,
		Timestamp:     now().UTC().Format(time.RFC3339),
	}
	code := http.StatusOK

	if h.Breaker != nil {
		state := h.Breaker.State().String()
		resp.check("ephemeris", state)
		if h.Breaker.IsOpen() {
			resp.Status = StatusDegraded
		}
	}
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			resp.check("store", StatusUnhealthy)
			resp.Status = StatusUnhealthy
			code = http.StatusServiceUnavailable
		} else {
			resp.check("store", StatusOK)
		}
	}

	respond.JSON(w, code, resp)
}

func (r *HealthResponse) check(name, status string) {
	if r.Checks == nil {
		r.Checks = make(map[string]string)
	}
	r.Checks[name] = status
}
