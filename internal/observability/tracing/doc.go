// Package tracing provides OpenTelemetry tracing for the HTTP layer and the
// chart usecase.
//
// Spans go to whatever TracerProvider is registered globally; without one the
// otel no-op provider is used.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "kundli.generate")
//	defer span.End()
package tracing
