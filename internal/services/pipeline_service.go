package services

import (
	"context"
	"fmt"
	"strings"

	"finchat/internal/messenger"
	"finchat/internal/models"
	"finchat/internal/repositories"

	"github.com/rs/zerolog"
)

// pipelineService implements PipelineServiceInterface. It drives exactly one
// message through classify → (record | answer | fallback) and sends the
// reply. No state crosses messages except the classifier's cache.
type pipelineService struct {
	classifier IntentServiceInterface
	extractor  ExtractionServiceInterface
	planner    PlannerServiceInterface
	query      QueryServiceInterface
	formatter  FormatterServiceInterface
	repo       repositories.TransactionRepositoryInterface
	sender     messenger.Sender
	metrics    MetricsRecorderInterface
	logger     zerolog.Logger
}

// NewPipelineService wires the message pipeline
func NewPipelineService(
	classifier IntentServiceInterface,
	extractor ExtractionServiceInterface,
	planner PlannerServiceInterface,
	query QueryServiceInterface,
	formatter FormatterServiceInterface,
	repo repositories.TransactionRepositoryInterface,
	sender messenger.Sender,
	metrics MetricsRecorderInterface,
	logger zerolog.Logger,
) PipelineServiceInterface {
	return &pipelineService{
		classifier: classifier,
		extractor:  extractor,
		planner:    planner,
		query:      query,
		formatter:  formatter,
		repo:       repo,
		sender:     sender,
		metrics:    metrics,
		logger:     logger.With().Str("component", "pipeline").Logger(),
	}
}

// HandleMessage implements PipelineServiceInterface. A returned error means
// the transport should answer with a generic processing-error status; reply
// delivery failures are logged and swallowed, never returned.
func (s *pipelineService) HandleMessage(ctx context.Context, senderID, text string) error {
	if strings.TrimSpace(text) == "" {
		// Non-content event (e.g. a delivery receipt): no reply.
		s.metrics.RecordMessage(IntentUnknown, OutcomeIgnored)
		return nil
	}

	intent, err := s.classifier.Classify(ctx, text)
	if err != nil {
		s.logger.Warn().Err(err).Str("sender", senderID).Msg("intent unresolved, sending fallback")
		s.metrics.RecordMessage("", OutcomeFallback)
		s.reply(ctx, senderID, s.formatter.FallbackReply())
		return nil
	}

	switch intent {
	case IntentNewTransaction:
		return s.recordTransaction(ctx, senderID, text)
	case IntentQueryTransactions:
		return s.answerQuery(ctx, senderID, text)
	default:
		s.metrics.RecordMessage(intent, OutcomeFallback)
		s.reply(ctx, senderID, s.formatter.FallbackReply())
		return nil
	}
}

func (s *pipelineService) recordTransaction(ctx context.Context, senderID, text string) error {
	result := s.extractor.Extract(ctx, text)
	if result.Fallback != FallbackNone {
		s.logger.Warn().
			Str("reason", string(result.Fallback)).
			Str("sender", senderID).
			Msg("extraction fell back to defaults")
	}

	transaction := &models.Transaction{
		Kind:        result.Transaction.Kind,
		Amount:      result.Transaction.Amount,
		Description: result.Transaction.Description,
		Category:    result.Transaction.Category,
	}

	if err := s.repo.Create(transaction); err != nil {
		s.metrics.RecordMessage(IntentNewTransaction, OutcomeError)
		return fmt.Errorf("failed to persist transaction: %w", err)
	}

	s.logger.Info().
		Str("transaction_id", transaction.ID.String()).
		Str("kind", transaction.Kind).
		Str("amount", transaction.Amount.StringFixed(2)).
		Msg("transaction recorded")

	s.metrics.RecordMessage(IntentNewTransaction, OutcomeRecorded)
	s.reply(ctx, senderID, s.formatter.FormatConfirmation(transaction))
	return nil
}

func (s *pipelineService) answerQuery(ctx context.Context, senderID, text string) error {
	planResult := s.planner.Plan(ctx, text)
	if planResult.Fallback != FallbackNone {
		s.logger.Warn().
			Str("reason", string(planResult.Fallback)).
			Str("sender", senderID).
			Msg("planning fell back to default plan")
	}

	queryResult, err := s.query.Execute(planResult.Plan)
	if err != nil {
		s.metrics.RecordMessage(IntentQueryTransactions, OutcomeError)
		return fmt.Errorf("failed to execute query plan: %w", err)
	}

	s.metrics.RecordMessage(IntentQueryTransactions, OutcomeAnswered)
	s.reply(ctx, senderID, s.formatter.FormatQueryReply(planResult.Plan, queryResult))
	return nil
}

// reply delivers the outbound message; failures are logged and swallowed
func (s *pipelineService) reply(ctx context.Context, senderID, text string) {
	if err := s.sender.Send(ctx, senderID, text); err != nil {
		s.logger.Error().Err(err).Str("sender", senderID).Msg("failed to send reply")
	}
}
