package services

import (
	"context"
	"encoding/json"
	"time"

	"finchat/internal/llm"
	"finchat/internal/models"
)

// plannerService implements PlannerServiceInterface
type plannerService struct {
	inference llm.Client
	now       func() time.Time
}

// NewPlannerService creates a new query planner. The clock is injected so the
// "today" the prompt advertises is controllable in tests.
func NewPlannerService(inference llm.Client, now func() time.Time) PlannerServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &plannerService{inference: inference, now: now}
}

type planPayload struct {
	Aggregation string          `json:"aggregation"`
	Filters     json.RawMessage `json:"filters"`
	Limit       json.RawMessage `json:"limit"`
}

// Plan implements PlannerServiceInterface. Total: any failure collapses to
// the default list-everything plan with a tagged reason.
func (s *plannerService) Plan(ctx context.Context, text string) PlanResult {
	today := s.now().UTC().Format("2006-01-02")

	raw, err := s.inference.Infer(ctx, plannerInstructions(today), text, true)
	if err != nil {
		return PlanResult{
			Plan:     models.DefaultQueryPlan(),
			Fallback: FallbackInferenceError,
		}
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &payload); err != nil {
		return PlanResult{
			Plan:     models.DefaultQueryPlan(),
			Fallback: FallbackParseError,
		}
	}

	return PlanResult{Plan: buildPlan(payload)}
}

// buildPlan validates the raw payload once, at plan construction: the
// aggregation is coerced to list, unknown filter keys are dropped, and the
// limit is kept only when it is a positive integer. A dropped limit stays
// zero, which the executor reads as "no cap".
func buildPlan(payload planPayload) models.QueryPlan {
	plan := models.DefaultQueryPlan()

	if models.IsValidAggregation(payload.Aggregation) {
		plan.Aggregation = payload.Aggregation
	}

	// A filters value that is not a mapping is replaced with an empty one
	// rather than failing the whole plan.
	var rawFilters map[string]any
	if len(payload.Filters) > 0 && json.Unmarshal(payload.Filters, &rawFilters) == nil {
		plan.Filters = models.ParseTransactionFilters(rawFilters)
	}

	if limit, ok := parseLimit(payload.Limit); ok {
		plan.Limit = limit
	}

	return plan
}

// parseLimit accepts only a positive integer JSON number
func parseLimit(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}

	limit := int(value)
	if float64(limit) != value || limit <= 0 {
		return 0, false
	}
	return limit, true
}
