package services

import (
	"context"
	"time"

	"finchat/internal/llm"
)

// guardedInference wraps the inference client with the circuit breaker and
// call metrics. A short-circuited call surfaces as an ordinary failure, which
// each core consumer already collapses to its documented default.
type guardedInference struct {
	inner   llm.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
}

// NewGuardedInference wraps an inference client with breaker and metrics
func NewGuardedInference(inner llm.Client, breaker CircuitBreakerInterface, metrics MetricsRecorderInterface) llm.Client {
	return &guardedInference{
		inner:   inner,
		breaker: breaker,
		metrics: metrics,
	}
}

// Infer implements llm.Client
func (g *guardedInference) Infer(ctx context.Context, instructions, userText string, wantStructured bool) (string, error) {
	if g.breaker.IsOpen() {
		g.metrics.RecordInferenceCall("short_circuited", 0)
		g.metrics.SetCircuitBreakerState(g.breaker.State())
		return "", ErrCircuitBreakerOpen
	}

	start := time.Now()
	text, err := g.inner.Infer(ctx, instructions, userText, wantStructured)
	elapsed := time.Since(start)

	if err != nil {
		g.breaker.RecordFailure()
		g.metrics.RecordInferenceCall("failure", elapsed)
	} else {
		g.breaker.RecordSuccess()
		g.metrics.RecordInferenceCall("success", elapsed)
	}
	g.metrics.SetCircuitBreakerState(g.breaker.State())

	return text, err
}
