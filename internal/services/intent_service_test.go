package services

import (
	"context"
	"errors"
	"testing"

	"finchat/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Labels(t *testing.T) {
	testCases := []struct {
		response string
		expected Intent
	}{
		{"new_transaction", IntentNewTransaction},
		{"query_transactions", IntentQueryTransactions},
		{"unknown", IntentUnknown},
		{"  new_transaction\n", IntentNewTransaction},
		{"\"query_transactions\"", IntentQueryTransactions},
		{"```\nnew_transaction\n```", IntentNewTransaction},
		{"NEW_TRANSACTION", IntentNewTransaction},
	}

	for _, tc := range testCases {
		t.Run(tc.response, func(t *testing.T) {
			stub := llm.NewStubClient(tc.response, nil)
			service := NewIntentService(stub, NewMemoryIntentCache(), NewNoopMetrics())

			intent, err := service.Classify(context.Background(), "gastei 50 no almoço")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, intent)
		})
	}
}

func TestClassify_SecondCallServedFromCache(t *testing.T) {
	stub := llm.NewStubClient("new_transaction", nil)
	service := NewIntentService(stub, NewMemoryIntentCache(), NewNoopMetrics())

	first, err := service.Classify(context.Background(), "gastei 50 no almoço")
	require.NoError(t, err)

	second, err := service.Classify(context.Background(), "gastei 50 no almoço")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.Calls(), "second classification must not call inference")
}

func TestClassify_CacheKeyIsNormalized(t *testing.T) {
	stub := llm.NewStubClient("query_transactions", nil)
	service := NewIntentService(stub, NewMemoryIntentCache(), NewNoopMetrics())

	_, err := service.Classify(context.Background(), "Quanto gastei hoje?")
	require.NoError(t, err)

	_, err = service.Classify(context.Background(), "  quanto GASTEI hoje?  ")
	require.NoError(t, err)

	assert.Equal(t, 1, stub.Calls())
}

func TestClassify_FailureIsNotCached(t *testing.T) {
	stub := llm.NewStubClient("", errors.New("timeout"))
	cache := NewMemoryIntentCache()
	service := NewIntentService(stub, cache, NewNoopMetrics())

	_, err := service.Classify(context.Background(), "gastei 50 no almoço")
	assert.ErrorIs(t, err, ErrIntentUnresolved)

	// A later successful call for the same text must hit inference again.
	stub.Err = nil
	stub.Response = "new_transaction"

	intent, err := service.Classify(context.Background(), "gastei 50 no almoço")
	require.NoError(t, err)
	assert.Equal(t, IntentNewTransaction, intent)
	assert.Equal(t, 2, stub.Calls())
}

func TestClassify_UnexpectedLabelIsUnresolved(t *testing.T) {
	stub := llm.NewStubClient("maybe_a_transaction", nil)
	cache := NewMemoryIntentCache()
	service := NewIntentService(stub, cache, NewNoopMetrics())

	_, err := service.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrIntentUnresolved)

	_, cached := cache.Get(CacheKey("hello"))
	assert.False(t, cached, "malformed responses must not be cached")
}
