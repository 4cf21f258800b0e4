package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements MetricsRecorderInterface
type PrometheusMetrics struct {
	messagesProcessed   *prometheus.CounterVec
	inferenceCalls      *prometheus.CounterVec
	inferenceDuration   prometheus.Histogram
	intentCacheHits     prometheus.Counter
	circuitBreakerState prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		messagesProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finchat_messages_processed_total",
				Help: "Inbound messages processed, by resolved intent and outcome",
			},
			[]string{"intent", "outcome"},
		),
		inferenceCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finchat_inference_calls_total",
				Help: "Calls to the inference collaborator, by status",
			},
			[]string{"status"},
		),
		inferenceDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finchat_inference_duration_milliseconds",
				Help:    "Inference call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		intentCacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "finchat_intent_cache_hits_total",
				Help: "Intent classifications served from the cache",
			},
		),
		circuitBreakerState: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "finchat_inference_circuit_breaker_state",
				Help: "Inference circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
		),
	}
}

// RecordMessage implements MetricsRecorderInterface
func (m *PrometheusMetrics) RecordMessage(intent Intent, outcome string) {
	label := string(intent)
	if label == "" {
		label = "unresolved"
	}
	m.messagesProcessed.WithLabelValues(label, outcome).Inc()
}

// RecordInferenceCall implements MetricsRecorderInterface
func (m *PrometheusMetrics) RecordInferenceCall(status string, duration time.Duration) {
	m.inferenceCalls.WithLabelValues(status).Inc()
	if duration > 0 {
		m.inferenceDuration.Observe(float64(duration.Milliseconds()))
	}
}

// RecordIntentCacheHit implements MetricsRecorderInterface
func (m *PrometheusMetrics) RecordIntentCacheHit() {
	m.intentCacheHits.Inc()
}

// SetCircuitBreakerState implements MetricsRecorderInterface
func (m *PrometheusMetrics) SetCircuitBreakerState(state CircuitBreakerState) {
	m.circuitBreakerState.Set(float64(state))
}

// NoopMetrics is a MetricsRecorderInterface that records nothing, for tests
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (n *NoopMetrics) RecordMessage(Intent, string)               {}
func (n *NoopMetrics) RecordInferenceCall(string, time.Duration)  {}
func (n *NoopMetrics) RecordIntentCacheHit()                      {}
func (n *NoopMetrics) SetCircuitBreakerState(CircuitBreakerState) {}
