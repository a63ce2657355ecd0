package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jyotish/internal/observability/metrics"
	"jyotish/internal/resilience/circuitbreaker"
)

func serveHealth(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return rr.Code, body
}

func TestHealthHandler_OK(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	code, body := serveHealth(t, &HealthHandler{EngineVersion: "1.1.0", Now: func() time.Time { return now }})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusOK, body.Status)
	assert.Equal(t, "1.1.0", body.EngineVersion)
	assert.Equal(t, "2024-01-02T03:04:05Z", body.Timestamp)
	assert.Empty(t, body.Checks)
}

func TestHealthHandler_BreakerOpenDegrades(t *testing.T) {
	cfg := circuitbreaker.EphemerisConfig()
	cfg.MinRequests = 1
	cb := circuitbreaker.New(cfg)
	_, _ = circuitbreaker.Do(cb, func() (struct{}, error) { return struct{}{}, errors.New("no data") })
	require.True(t, cb.IsOpen())

	code, body := serveHealth(t, &HealthHandler{Breaker: cb})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusDegraded, body.Status)
	assert.Equal(t, "open", body.Checks["ephemeris"])
}

func TestHealthHandler_Store(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	code, body := serveHealth(t, &HealthHandler{DB: db})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusOK, body.Checks["store"])

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	code, body = serveHealth(t, &HealthHandler{DB: db})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, StatusUnhealthy, body.Status)
	assert.Equal(t, StatusUnhealthy, body.Checks["store"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/kundli/dasha/current", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	h := MetricsMiddleware(mux)

	counter := func(path, status string) float64 {
		var m dto.Metric
		require.NoError(t, metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, path, status).Write(&m))
		return m.GetCounter().GetValue()
	}
	matched := counter("GET /api/v1/kundli/dasha/current", "200")
	unmatched := counter(unmatchedRoute, "404")

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/kundli/dasha/current?dob=x", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	assert.Equal(t, matched+1, counter("GET /api/v1/kundli/dasha/current", "200"))
	assert.Equal(t, unmatched+1, counter(unmatchedRoute, "404"))
}

func TestMetricsHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "kundli_ephemeris_breaker_state")
}
