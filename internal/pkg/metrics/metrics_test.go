package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveProvider("directions", "OK", 120*time.Millisecond)
	m.ObserveProvider("directions", "OK", 80*time.Millisecond)
	m.ObserveProvider("nearby", "ZERO_RESULTS", 50*time.Millisecond)
	m.ObserveTour(OutcomeScenic, 3)
	m.ObserveTour(OutcomeFastestOnly, 0)
	m.ObserveTrim()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.providerRequests.WithLabelValues("directions", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.providerRequests.WithLabelValues("nearby", "ZERO_RESULTS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tours.WithLabelValues(OutcomeScenic)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scenicTrims))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveProvider("directions", "OK", time.Second)
		m.ObserveTour(OutcomeFailed, 0)
		m.ObserveTrim()
	})
}
