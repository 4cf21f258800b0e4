package models

import "time"

const (
	AggregationSum  = "sum"
	AggregationList = "list"
)

// Filter keys accepted from the planner output. Anything else is dropped at
// plan construction time.
const (
	FilterKeyDateStart = "date_start"
	FilterKeyDateEnd   = "date_end"
	FilterKeyKind      = "kind"
	FilterKeyCategory  = "category"
)

// TransactionFilters is the closed set of predicates a query plan may carry.
// Date bounds are midnight UTC of the requested calendar date; both ends are
// inclusive, so a record at 23:59 on the end date still matches.
type TransactionFilters struct {
	DateStart *time.Time
	DateEnd   *time.Time
	Kind      string
	Category  string
}

// IsEmpty returns true when no predicate is set
func (f TransactionFilters) IsEmpty() bool {
	return f.DateStart == nil && f.DateEnd == nil && f.Kind == "" && f.Category == ""
}

// QueryPlan is the structured form of a natural-language question about past
// transactions. Limit is only meaningful for list plans; zero means no cap.
type QueryPlan struct {
	Aggregation string
	Filters     TransactionFilters
	Limit       int
}

// DefaultQueryPlan returns the plan used when planning fails: list everything.
func DefaultQueryPlan() QueryPlan {
	return QueryPlan{Aggregation: AggregationList}
}

// IsValidAggregation checks if the aggregation value is valid
func IsValidAggregation(aggregation string) bool {
	switch aggregation {
	case AggregationSum, AggregationList:
		return true
	default:
		return false
	}
}

// ParseTransactionFilters builds the closed filter set from the raw mapping
// returned by the planner. Unknown keys, non-string values and unparseable
// dates are dropped; an invalid kind is dropped rather than propagated.
func ParseTransactionFilters(raw map[string]any) TransactionFilters {
	var filters TransactionFilters

	for key, value := range raw {
		text, ok := value.(string)
		if !ok || text == "" {
			continue
		}

		switch key {
		case FilterKeyDateStart:
			if day, err := time.Parse("2006-01-02", text); err == nil {
				filters.DateStart = &day
			}
		case FilterKeyDateEnd:
			if day, err := time.Parse("2006-01-02", text); err == nil {
				filters.DateEnd = &day
			}
		case FilterKeyKind:
			if IsValidKind(text) {
				filters.Kind = text
			}
		case FilterKeyCategory:
			filters.Category = text
		}
	}

	return filters
}
