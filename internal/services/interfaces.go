package services

import (
	"context"
	"time"

	"finchat/internal/models"

	"github.com/shopspring/decimal"
)

// Intent is the resolved meaning of an inbound message
type Intent string

const (
	IntentNewTransaction    Intent = "new_transaction"
	IntentQueryTransactions Intent = "query_transactions"
	IntentUnknown           Intent = "unknown"
)

// IsValidIntent checks if the intent label is one the classifier may return
func IsValidIntent(intent Intent) bool {
	switch intent {
	case IntentNewTransaction, IntentQueryTransactions, IntentUnknown:
		return true
	default:
		return false
	}
}

// FallbackReason tags why a component returned its documented default instead
// of a parsed value. Empty means the value was parsed normally.
type FallbackReason string

const (
	FallbackNone           FallbackReason = ""
	FallbackInferenceError FallbackReason = "inference_error"
	FallbackParseError     FallbackReason = "parse_error"
)

// ExtractedTransaction is the ephemeral output of the extractor: a
// transaction minus store-assigned fields, always fully populated.
type ExtractedTransaction struct {
	Kind        string
	Amount      decimal.Decimal
	Description string
	Category    string
}

// ExtractionResult carries the extracted transaction plus the reason a
// default was produced, if one was.
type ExtractionResult struct {
	Transaction ExtractedTransaction
	Fallback    FallbackReason
}

// PlanResult carries the query plan plus the reason a default was produced
type PlanResult struct {
	Plan     models.QueryPlan
	Fallback FallbackReason
}

// QueryResult is the outcome of executing a query plan: a scalar sum or an
// ordered list, depending on the plan's aggregation.
type QueryResult struct {
	Aggregation  string
	Sum          decimal.Decimal
	Transactions []models.Transaction
}

// IntentCacheInterface is the injected cache used by the classifier. Values
// for the same key are expected to be identical, so last-write-wins races are
// acceptable.
type IntentCacheInterface interface {
	Get(key string) (Intent, bool)
	Set(key string, intent Intent)
}

// IntentServiceInterface classifies an inbound message. A non-nil error means
// the intent could not be resolved; unresolved classifications are never
// cached.
type IntentServiceInterface interface {
	Classify(ctx context.Context, text string) (Intent, error)
}

// ExtractionServiceInterface turns message text into a transaction. Total:
// it never fails, it may be wrong.
type ExtractionServiceInterface interface {
	Extract(ctx context.Context, text string) ExtractionResult
}

// PlannerServiceInterface turns a question into a query plan. Total.
type PlannerServiceInterface interface {
	Plan(ctx context.Context, text string) PlanResult
}

// QueryServiceInterface executes a query plan against the store. Read only.
type QueryServiceInterface interface {
	Execute(plan models.QueryPlan) (QueryResult, error)
}

// FormatterServiceInterface renders replies. Pure.
type FormatterServiceInterface interface {
	FormatConfirmation(transaction *models.Transaction) string
	FormatQueryReply(plan models.QueryPlan, result QueryResult) string
	FallbackReply() string
}

// PipelineServiceInterface drives one inbound message end to end
type PipelineServiceInterface interface {
	HandleMessage(ctx context.Context, senderID, text string) error
}

// SeedGeneratorInterface produces fake transaction histories for
// development environments
type SeedGeneratorInterface interface {
	Generate(count, days int) []models.Transaction
}

// CircuitBreakerInterface guards the inference collaborator
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	State() CircuitBreakerState
}

// MetricsRecorderInterface records pipeline observability signals
type MetricsRecorderInterface interface {
	RecordMessage(intent Intent, outcome string)
	RecordInferenceCall(status string, duration time.Duration)
	RecordIntentCacheHit()
	SetCircuitBreakerState(state CircuitBreakerState)
}

// Message outcomes recorded by the pipeline
const (
	OutcomeRecorded = "recorded"
	OutcomeAnswered = "answered"
	OutcomeFallback = "fallback"
	OutcomeIgnored  = "ignored"
	OutcomeError    = "error"
)
