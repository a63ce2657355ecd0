package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestRecordChartComputed(t *testing.T) {
	ok := ChartsComputedTotal.WithLabelValues("success")
	failed := ChartsComputedTotal.WithLabelValues("failure")
	okBefore, failedBefore := counterValue(t, ok), counterValue(t, failed)

	RecordChartComputed(true, 2*time.Millisecond)
	RecordChartComputed(true, time.Millisecond)
	RecordChartComputed(false, 0)

	assert.Equal(t, okBefore+2, counterValue(t, ok))
	assert.Equal(t, failedBefore+1, counterValue(t, failed))
}

func TestRecordCacheLookup(t *testing.T) {
	tests := []struct {
		tier  string
		hit   bool
		label string
	}{
		{TierMemory, true, "hit"},
		{TierMemory, false, "miss"},
		{TierStore, true, "hit"},
		{TierStore, false, "miss"},
	}

	for _, tt := range tests {
		t.Run(tt.tier+"_"+tt.label, func(t *testing.T) {
			c := ChartCacheLookups.WithLabelValues(tt.tier, tt.label)
			before := counterValue(t, c)
			RecordCacheLookup(tt.tier, tt.hit)
			assert.Equal(t, before+1, counterValue(t, c))
		})
	}
}

func TestSetCacheEntries(t *testing.T) {
	SetCacheEntries(42)
	assert.Equal(t, 42.0, gaugeValue(t, ChartCacheEntries))
	SetCacheEntries(0)
	assert.Equal(t, 0.0, gaugeValue(t, ChartCacheEntries))
}

func TestRecordStoreOperation(t *testing.T) {
	ok := ChartStoreOperations.WithLabelValues("save", "success")
	failed := ChartStoreOperations.WithLabelValues("save", "failure")
	okBefore, failedBefore := counterValue(t, ok), counterValue(t, failed)

	RecordStoreOperation("save", nil, time.Millisecond)
	RecordStoreOperation("save", errors.New("boom"), time.Millisecond)

	assert.Equal(t, okBefore+1, counterValue(t, ok))
	assert.Equal(t, failedBefore+1, counterValue(t, failed))
}

func TestRecordPurge(t *testing.T) {
	c := ChartsPurgedTotal.WithLabelValues("expired")
	before := counterValue(t, c)

	RecordPurge("expired", 5)
	RecordPurge("expired", 0)
	RecordPurge("expired", -1)

	assert.Equal(t, before+5, counterValue(t, c))
}

func TestRecordBreakerState(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		want  float64
	}{
		{gobreaker.StateOpen, 2},
		{gobreaker.StateHalfOpen, 1},
		{gobreaker.StateClosed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			RecordBreakerState(tt.state)
			assert.Equal(t, tt.want, gaugeValue(t, EphemerisBreakerState))
		})
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/kundli/generate", "200")
	before := counterValue(t, c)

	assert.NotPanics(t, func() {
		RecordHTTPRequest("POST", "/api/v1/kundli/generate", "200", 3*time.Millisecond, 2048)
		RecordHTTPRequest("POST", "/api/v1/kundli/generate", "200", time.Millisecond, 0)
	})
	assert.Equal(t, before+2, counterValue(t, c))
}
