// Package metrics provides the Prometheus metrics of the chart service.
//
// The package covers:
//   - HTTP request metrics (duration, count, size)
//   - Chart metrics (computations, cache lookups, store operations, purges)
//   - Ephemeris circuit breaker state
//
// All metrics are registered with the Prometheus default registry through
// promauto and exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	chart, err := calc.Compute(in)
//	metrics.RecordChartComputed(err == nil, time.Since(start))
package metrics
