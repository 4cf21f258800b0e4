package services

import (
	"fmt"
	"strings"

	"finchat/internal/models"
)

const (
	nothingFoundReply   = "No transactions found for that question."
	couldNotFormatReply = "Sorry, I could not put that answer together."
	fallbackReply       = "Sorry, I could not understand that. You can record a transaction " +
		"(\"gastei 50 no almoço\") or ask about your spending (\"quanto gastei hoje?\")."
)

// formatterService implements FormatterServiceInterface
type formatterService struct{}

// NewFormatterService creates a new reply formatter
func NewFormatterService() FormatterServiceInterface {
	return &formatterService{}
}

// FormatConfirmation renders the reply for a freshly persisted transaction.
// Amount and description come from the persisted record, not the raw
// extraction.
func (s *formatterService) FormatConfirmation(transaction *models.Transaction) string {
	kind := "Expense"
	if transaction.IsIncome() {
		kind = "Income"
	}
	return fmt.Sprintf("%s recorded: %s (%s), R$ %s",
		kind, transaction.Description, transaction.Category, transaction.Amount.StringFixed(2))
}

// FormatQueryReply implements FormatterServiceInterface
func (s *formatterService) FormatQueryReply(plan models.QueryPlan, result QueryResult) string {
	switch result.Aggregation {
	case models.AggregationSum:
		return formatSum(plan, result)
	case models.AggregationList:
		return formatList(result)
	default:
		// Unreachable given plan coercion; terminal branch only.
		return couldNotFormatReply
	}
}

// FallbackReply implements FormatterServiceInterface
func (s *formatterService) FallbackReply() string {
	return fallbackReply
}

func formatSum(plan models.QueryPlan, result QueryResult) string {
	subject := "transactions"
	if plan.Filters.Kind != "" {
		subject = plan.Filters.Kind
	}

	var b strings.Builder
	b.WriteString("The total of ")
	b.WriteString(subject)
	if plan.Filters.Category != "" {
		fmt.Fprintf(&b, " with '%s'", plan.Filters.Category)
	}
	fmt.Fprintf(&b, " is R$ %s", result.Sum.StringFixed(2))
	return b.String()
}

func formatList(result QueryResult) string {
	if len(result.Transactions) == 0 {
		return nothingFoundReply
	}

	var b strings.Builder
	b.WriteString("Here is what I found:")
	for _, transaction := range result.Transactions {
		fmt.Fprintf(&b, "\n- %s: R$ %s (%s)",
			transaction.Description,
			transaction.Amount.StringFixed(2),
			transaction.CreatedAt.Format("02/01"))
	}
	return b.String()
}
