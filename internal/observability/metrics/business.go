package metrics

import (
	"time"

	"github.com/sony/gobreaker"
)

// Cache tiers.
const (
	TierMemory = "memory"
	TierStore  = "store"
)

func result(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

// RecordChartComputed records the outcome and duration of a chart computation.
func RecordChartComputed(success bool, duration time.Duration) {
	ChartsComputedTotal.WithLabelValues(result(success, "success", "failure")).Inc()
	ChartComputeDuration.Observe(duration.Seconds())
}

// RecordCacheLookup records a hit or miss on the given tier.
func RecordCacheLookup(tier string, hit bool) {
	ChartCacheLookups.WithLabelValues(tier, result(hit, "hit", "miss")).Inc()
}

// SetCacheEntries updates the in-memory cache size gauge.
func SetCacheEntries(n int) {
	ChartCacheEntries.Set(float64(n))
}

// RecordStoreOperation records a chart store call.
// Operation should name the repository method, e.g. "get", "save".
func RecordStoreOperation(operation string, err error, duration time.Duration) {
	ChartStoreOperations.WithLabelValues(operation, result(err == nil, "success", "failure")).Inc()
	ChartStoreDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordPurge records charts removed by the purge job.
// Reason is "expired" or "stale_version".
func RecordPurge(reason string, count int64) {
	if count <= 0 {
		return
	}
	ChartsPurgedTotal.WithLabelValues(reason).Add(float64(count))
}

// RecordBreakerState maps a gobreaker state onto the breaker gauge.
func RecordBreakerState(state gobreaker.State) {
	switch state {
	case gobreaker.StateClosed:
		EphemerisBreakerState.Set(0)
	case gobreaker.StateHalfOpen:
		EphemerisBreakerState.Set(1)
	case gobreaker.StateOpen:
		EphemerisBreakerState.Set(2)
	}
}
