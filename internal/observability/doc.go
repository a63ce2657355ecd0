// Package observability groups logging, metrics, and tracing for the chart
// service.
//
// Subpackages:
//   - logging: slog handlers, file rotation, request-scoped loggers
//   - metrics: Prometheus collectors for HTTP traffic and chart computation
//   - tracing: OpenTelemetry spans and the HTTP tracing middleware
//
// Example usage:
//
//	import (
//	    "jyotish/internal/observability/logging"
//	    "jyotish/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordChartComputed(true, 12*time.Millisecond)
//	}
package observability
