package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and latency of the API.
var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes.
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRateLimited counts requests rejected by the rate limiter.
	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Chart metrics track the chart pipeline.
var (
	// ChartsComputedTotal counts chart computations by result (success, failure).
	ChartsComputedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kundli_charts_computed_total",
			Help: "Total number of chart computations",
		},
		[]string{"result"},
	)

	// ChartComputeDuration measures one full chart computation.
	ChartComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kundli_chart_compute_duration_seconds",
			Help:    "Time taken to compute a chart",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	// ChartCacheLookups counts lookups by tier (memory, store) and result (hit, miss).
	ChartCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kundli_chart_cache_lookups_total",
			Help: "Total number of chart cache lookups",
		},
		[]string{"tier", "result"},
	)

	// ChartCacheEntries is the number of charts held in memory.
	ChartCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kundli_chart_cache_entries",
			Help: "Number of charts in the in-memory cache",
		},
	)

	// ChartStoreOperations counts store calls by operation and result.
	ChartStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kundli_chart_store_operations_total",
			Help: "Total number of chart store operations",
		},
		[]string{"operation", "result"},
	)

	// ChartStoreDuration measures chart store latency by operation.
	ChartStoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kundli_chart_store_duration_seconds",
			Help:    "Chart store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// ChartsPurgedTotal counts charts removed by the purge job, by reason.
	ChartsPurgedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kundli_charts_purged_total",
			Help: "Total number of stored charts removed by the purge job",
		},
		[]string{"reason"},
	)

	// EphemerisBreakerState is 0 closed, 1 half-open, 2 open.
	EphemerisBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kundli_ephemeris_breaker_state",
			Help: "Ephemeris circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata.
func RecordHTTPRequest(method, path, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
