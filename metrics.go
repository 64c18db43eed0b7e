package promptai

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes recorded by Metrics.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeAborted = "aborted"
)

// Metrics records prometheus counters and latencies for provider calls.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg. A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promptai_requests_total",
				Help: "Total number of provider calls by outcome",
			},
			[]string{"service", "outcome"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "promptai_request_duration_seconds",
				Help:    "Time taken by provider calls in seconds",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
			},
			[]string{"service"},
		),
	}
}

func (m *Metrics) observe(service Service, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(service.String(), outcome).Inc()
	if outcome != OutcomeAborted {
		m.Duration.WithLabelValues(service.String()).Observe(elapsed.Seconds())
	}
}
