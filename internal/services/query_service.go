package services

import (
	"fmt"

	"finchat/internal/models"
	"finchat/internal/repositories"
)

// queryService implements QueryServiceInterface
type queryService struct {
	repo repositories.TransactionRepositoryInterface
}

// NewQueryService creates a new query executor
func NewQueryService(repo repositories.TransactionRepositoryInterface) QueryServiceInterface {
	return &queryService{repo: repo}
}

// Execute implements QueryServiceInterface. Read only; the repository's
// snapshot semantics make it safe to run concurrently with inserts.
func (s *queryService) Execute(plan models.QueryPlan) (QueryResult, error) {
	switch plan.Aggregation {
	case models.AggregationSum:
		total, err := s.repo.SumAmount(plan.Filters)
		if err != nil {
			return QueryResult{}, fmt.Errorf("failed to execute sum plan: %w", err)
		}
		return QueryResult{Aggregation: models.AggregationSum, Sum: total}, nil

	case models.AggregationList:
		transactions, err := s.repo.ListWithFilters(plan.Filters, plan.Limit)
		if err != nil {
			return QueryResult{}, fmt.Errorf("failed to execute list plan: %w", err)
		}
		return QueryResult{Aggregation: models.AggregationList, Transactions: transactions}, nil

	default:
		return QueryResult{}, fmt.Errorf("unsupported aggregation %q", plan.Aggregation)
	}
}
