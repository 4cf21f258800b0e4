package services

import (
	"context"
	"encoding/json"

	"finchat/internal/llm"
	"finchat/internal/models"

	"github.com/shopspring/decimal"
)

const (
	defaultDescription = "unidentified"
	defaultCategory    = "Other"
)

// extractionService implements ExtractionServiceInterface
type extractionService struct {
	inference llm.Client
}

// NewExtractionService creates a new transaction extractor
func NewExtractionService(inference llm.Client) ExtractionServiceInterface {
	return &extractionService{inference: inference}
}

// DefaultExtractedTransaction is the record produced when extraction fails
// entirely. Partial results are never returned.
func DefaultExtractedTransaction() ExtractedTransaction {
	return ExtractedTransaction{
		Kind:        models.KindExpense,
		Amount:      decimal.Zero,
		Description: defaultDescription,
		Category:    defaultCategory,
	}
}

type extractionPayload struct {
	Kind        string          `json:"kind"`
	Amount      json.RawMessage `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// Extract implements ExtractionServiceInterface. Total: any failure collapses
// to the full default record with a tagged reason.
func (s *extractionService) Extract(ctx context.Context, text string) ExtractionResult {
	raw, err := s.inference.Infer(ctx, extractionInstructions, text, true)
	if err != nil {
		return ExtractionResult{
			Transaction: DefaultExtractedTransaction(),
			Fallback:    FallbackInferenceError,
		}
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &payload); err != nil {
		return ExtractionResult{
			Transaction: DefaultExtractedTransaction(),
			Fallback:    FallbackParseError,
		}
	}

	return ExtractionResult{Transaction: coerceExtraction(payload)}
}

// coerceExtraction validates field by field, falling back per field rather
// than rejecting the whole record.
func coerceExtraction(payload extractionPayload) ExtractedTransaction {
	extracted := DefaultExtractedTransaction()

	if models.IsValidKind(payload.Kind) {
		extracted.Kind = payload.Kind
	}

	if amount, ok := parseAmount(payload.Amount); ok {
		extracted.Amount = amount
	}

	if payload.Description != "" {
		extracted.Description = payload.Description
	}

	if payload.Category != "" {
		extracted.Category = payload.Category
	}

	return extracted
}

// parseAmount accepts a JSON number or a numeric string, rejecting anything
// that does not parse as a non-negative finite number.
func parseAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	if len(raw) == 0 {
		return decimal.Zero, false
	}

	text := string(raw)
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		text = quoted
	}

	amount, err := decimal.NewFromString(text)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, false
	}
	return amount, true
}
