package observability

import (
	"errors"
	"strings"
	"time"

	pkgerrors "github.com/kevin07696/braspag-go/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeSuccess        = "success"
	OutcomeTransportError = "transport_error"
)

// GatewayMetrics records Braspag calls. A nil *GatewayMetrics records nothing.
type GatewayMetrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
}

// NewGatewayMetrics registers the gateway collectors on reg
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	factory := promauto.With(reg)
	return &GatewayMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "braspag_gateway_requests_total",
				Help: "Total number of Braspag gateway operations",
			},
			[]string{"operation", "outcome"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "braspag_gateway_request_duration_seconds",
				Help:    "Duration of Braspag gateway operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "braspag_gateway_requests_in_flight",
				Help: "Number of Braspag gateway operations currently running",
			},
		),
	}
}

// Start marks an operation as running. The returned func records its
// duration and outcome and must be called exactly once.
func (m *GatewayMetrics) Start(operation string) func(err error) {
	if m == nil {
		return func(error) {}
	}
	start := time.Now()
	m.requestsInFlight.Inc()

	return func(err error) {
		m.requestsInFlight.Dec()
		m.requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(operation, Outcome(err)).Inc()
	}
}

// Outcome maps an operation error onto a low-cardinality label
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var typed *pkgerrors.Error
	if errors.As(err, &typed) {
		return strings.ToLower(string(typed.Code))
	}
	return OutcomeTransportError
}
