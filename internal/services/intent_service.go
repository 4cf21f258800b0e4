package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finchat/internal/llm"
)

var (
	ErrIntentUnresolved = errors.New("intent could not be resolved")
)

// intentService implements IntentServiceInterface
type intentService struct {
	inference llm.Client
	cache     IntentCacheInterface
	metrics   MetricsRecorderInterface
}

// NewIntentService creates a new intent classifier backed by the inference
// collaborator and the injected cache.
func NewIntentService(inference llm.Client, cache IntentCacheInterface, metrics MetricsRecorderInterface) IntentServiceInterface {
	return &intentService{
		inference: inference,
		cache:     cache,
		metrics:   metrics,
	}
}

// Classify implements IntentServiceInterface. The cache is written only on a
// successful classification, so a transient inference failure never poisons
// future identical messages.
func (s *intentService) Classify(ctx context.Context, text string) (Intent, error) {
	key := CacheKey(text)

	if intent, ok := s.cache.Get(key); ok {
		s.metrics.RecordIntentCacheHit()
		return intent, nil
	}

	raw, err := s.inference.Infer(ctx, intentInstructions, text, false)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIntentUnresolved, err)
	}

	intent, ok := parseIntentLabel(raw)
	if !ok {
		return "", fmt.Errorf("%w: unexpected label %q", ErrIntentUnresolved, raw)
	}

	s.cache.Set(key, intent)
	return intent, nil
}

// parseIntentLabel reads the model output permissively: code fences, quotes
// and surrounding whitespace are tolerated, the label itself is not.
func parseIntentLabel(raw string) (Intent, bool) {
	label := cleanModelJSON(raw)
	label = strings.Trim(label, "\"'`.")
	label = strings.ToLower(strings.TrimSpace(label))

	intent := Intent(label)
	if !IsValidIntent(intent) {
		return "", false
	}
	return intent, true
}
