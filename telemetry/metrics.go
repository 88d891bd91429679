package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the counters a caller may wire into its decode loop.
// Like Logger, nothing in internal/wire or pkg/http's core calls this —
// only code built on top, such as cmd/httpwire-probe.
type Metrics interface {
	MessagesDecoded(kind string)
	DecodeErrors(kind string)
	BodyBytesDecoded(kind string, n int64)
}

type promMetrics struct {
	messages  *prometheus.CounterVec
	errors    *prometheus.CounterVec
	bodyBytes *prometheus.CounterVec
}

// NewPrometheusMetrics registers this package's counters under namespace
// and returns a Metrics backed by them.
func NewPrometheusMetrics(namespace string) Metrics {
	return &promMetrics{
		messages: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_decoded_total",
			Help:      "HTTP messages fully decoded, by kind (request/response).",
		}, []string{"kind"}),
		errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Decoder errors raised, by kind (request/response).",
		}, []string{"kind"}),
		bodyBytes: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "body_bytes_decoded_total",
			Help:      "Body bytes decoded, by kind (request/response).",
		}, []string{"kind"}),
	}
}

func (m *promMetrics) MessagesDecoded(kind string) { m.messages.WithLabelValues(kind).Inc() }
func (m *promMetrics) DecodeErrors(kind string)    { m.errors.WithLabelValues(kind).Inc() }
func (m *promMetrics) BodyBytesDecoded(kind string, n int64) {
	m.bodyBytes.WithLabelValues(kind).Add(float64(n))
}

type noopMetrics struct{}

// NewNoopMetrics returns a Metrics that discards everything.
func NewNoopMetrics() Metrics { return noopMetrics{} }

func (noopMetrics) MessagesDecoded(string)         {}
func (noopMetrics) DecodeErrors(string)            {}
func (noopMetrics) BodyBytesDecoded(string, int64) {}
