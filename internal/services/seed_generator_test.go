package services

import (
	"testing"
	"time"

	"finchat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedGenerator_Generate(t *testing.T) {
	generator := NewSeedGenerator()

	transactions := generator.Generate(100, 30)

	require.Len(t, transactions, 100)

	oldest := time.Now().UTC().Add(-31 * 24 * time.Hour)
	sawIncome := false
	for _, transaction := range transactions {
		assert.True(t, models.IsValidKind(transaction.Kind))
		assert.False(t, transaction.Amount.IsNegative())
		assert.NotEmpty(t, transaction.Description)
		assert.NotEmpty(t, transaction.Category)
		assert.True(t, transaction.CreatedAt.After(oldest))
		assert.NoError(t, transaction.Validate())
		if transaction.Kind == models.KindIncome {
			sawIncome = true
		}
	}
	assert.True(t, sawIncome, "a month of history should include income")
}

func TestSeedGenerator_InvalidParams(t *testing.T) {
	generator := NewSeedGenerator()

	assert.Nil(t, generator.Generate(0, 30))
	assert.Nil(t, generator.Generate(100, 0))
	assert.Nil(t, generator.Generate(-1, -1))
}
