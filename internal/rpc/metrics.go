package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Call outcomes
const (
	OutcomeOK          = "ok"
	OutcomeBuildError  = "build_error"
	OutcomeSendError   = "send_error"
	OutcomeReadError   = "read_error"
	OutcomeDecodeError = "decode_error"
)

// Metrics contains the Prometheus collectors updated by Client.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics initializes and registers the collectors on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers the collectors with a custom registry
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "luxrpc_requests_total",
				Help: "The total number of node API calls by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "luxrpc_request_duration_seconds",
				Help:    "Time spent waiting for the node to answer",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

func (m *Metrics) observe(method, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, outcome).Inc()
	if took > 0 {
		m.Duration.WithLabelValues(method).Observe(took.Seconds())
	}
}
