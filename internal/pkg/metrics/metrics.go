package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Tour outcomes
const (
	OutcomeFastestOnly = "fastest_only"
	OutcomeScenic      = "scenic"
	OutcomeFailed      = "failed"
)

// Metrics - prometheus collectors of the service. A nil *Metrics is a valid no-op.
type Metrics struct {
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	tours            *prometheus.CounterVec
	scenicPoints     prometheus.Histogram
	scenicTrims      prometheus.Counter
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		providerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scenic_tour",
			Name:      "provider_requests_total",
			Help:      "Outbound mapping provider requests by operation and status.",
		}, []string{"op", "status"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scenic_tour",
			Name:      "provider_request_duration_seconds",
			Help:      "Latency of outbound mapping provider requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		tours: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scenic_tour",
			Name:      "tours_total",
			Help:      "Tour requests by outcome.",
		}, []string{"outcome"}),
		scenicPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "scenic_tour",
			Name:      "scenic_points",
			Help:      "Number of scenic points on returned scenic routes.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		scenicTrims: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scenic_tour",
			Name:      "scenic_trims_total",
			Help:      "Scenic candidates removed after the provider reported an over-budget route.",
		}),
	}

	reg.MustRegister(m.providerRequests, m.providerLatency, m.tours, m.scenicPoints, m.scenicTrims)
	return m
}

// ObserveProvider records one provider round trip
func (m *Metrics) ObserveProvider(op, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.providerRequests.WithLabelValues(op, status).Inc()
	m.providerLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// ObserveTour records the outcome of a tour request
func (m *Metrics) ObserveTour(outcome string, scenicPoints int) {
	if m == nil {
		return
	}
	m.tours.WithLabelValues(outcome).Inc()
	if outcome == OutcomeScenic {
		m.scenicPoints.Observe(float64(scenicPoints))
	}
}

// ObserveTrim records a scenic candidate trimmed by the synthesizer
func (m *Metrics) ObserveTrim() {
	if m == nil {
		return
	}
	m.scenicTrims.Inc()
}
