package services

import (
	"time"

	"finchat/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const hoursInDay = 24

// seedProfile describes one category of generated spending
type seedProfile struct {
	category     string
	descriptions []string
	minAmount    float64
	maxAmount    float64
}

// seedGenerator produces realistic transaction histories for development
// environments, so query answers can be exercised without days of real chat
// traffic.
type seedGenerator struct {
	faker    *gofakeit.Faker
	profiles []seedProfile
}

// NewSeedGenerator creates a new seed data generator
func NewSeedGenerator() SeedGeneratorInterface {
	return &seedGenerator{
		faker:    gofakeit.New(0),
		profiles: seedProfiles(),
	}
}

func seedProfiles() []seedProfile {
	return []seedProfile{
		{
			category:     "Alimentação",
			descriptions: []string{"almoço", "jantar", "café", "mercado", "padaria", "lanche"},
			minAmount:    8,
			maxAmount:    120,
		},
		{
			category:     "Transporte",
			descriptions: []string{"uber", "gasolina", "metrô", "ônibus", "estacionamento"},
			minAmount:    5,
			maxAmount:    200,
		},
		{
			category:     "Lazer",
			descriptions: []string{"cinema", "streaming", "show", "bar"},
			minAmount:    15,
			maxAmount:    250,
		},
		{
			category:     "Saúde",
			descriptions: []string{"farmácia", "consulta", "academia"},
			minAmount:    20,
			maxAmount:    400,
		},
		{
			category:     "Casa",
			descriptions: []string{"luz", "internet", "aluguel", "condomínio"},
			minAmount:    50,
			maxAmount:    1500,
		},
	}
}

// Generate implements SeedGeneratorInterface. Timestamps are spread uniformly
// over the past days, with roughly one income entry per 30 days.
func (g *seedGenerator) Generate(count, days int) []models.Transaction {
	if count <= 0 || days <= 0 {
		return nil
	}

	now := time.Now().UTC()
	transactions := make([]models.Transaction, 0, count)

	incomeEvery := count
	if days >= 30 {
		incomeEvery = count / (days / 30)
		if incomeEvery == 0 {
			incomeEvery = count
		}
	}

	for i := 0; i < count; i++ {
		createdAt := now.Add(-time.Duration(g.faker.IntRange(0, days*hoursInDay)) * time.Hour)

		if incomeEvery > 0 && (i+1)%incomeEvery == 0 {
			transactions = append(transactions, models.Transaction{
				Kind:        models.KindIncome,
				Amount:      decimal.NewFromFloat(g.faker.Float64Range(1500, 8000)).Round(2),
				Description: "salário",
				Category:    "Renda",
				CreatedAt:   createdAt,
			})
			continue
		}

		profile := g.profiles[g.faker.IntRange(0, len(g.profiles)-1)]
		transactions = append(transactions, models.Transaction{
			Kind:        models.KindExpense,
			Amount:      decimal.NewFromFloat(g.faker.Float64Range(profile.minAmount, profile.maxAmount)).Round(2),
			Description: g.faker.RandomString(profile.descriptions),
			Category:    profile.category,
			CreatedAt:   createdAt,
		})
	}

	return transactions
}
