package handlers

import (
	"net/http"
	"strconv"

	"finchat/internal/repositories"
	"finchat/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedCount = 100
	maxSeedCount     = 1000
	defaultSeedDays  = 30
	maxSeedDays      = 365
)

// DevHandler handles development-only endpoints. It must never be routed in
// production.
type DevHandler struct {
	repo      repositories.TransactionRepositoryInterface
	generator services.SeedGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(repo repositories.TransactionRepositoryInterface) *DevHandler {
	return &DevHandler{
		repo:      repo,
		generator: services.NewSeedGenerator(),
	}
}

// SeedTransactions generates fake transaction history so queries can be
// exercised without real chat traffic.
//
// Method: POST /dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: number of transactions to generate (default: 100, max: 1000)
//   - days: days of history to spread them over (default: 30, max: 365)
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	count := parseBoundedParam(c, "count", defaultSeedCount, maxSeedCount)
	days := parseBoundedParam(c, "days", defaultSeedDays, maxSeedDays)

	transactions := h.generator.Generate(count, days)
	for i := range transactions {
		if err := h.repo.Create(&transactions[i]); err != nil {
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "Test data generated successfully",
		"transactions_created": len(transactions),
	})
}

func parseBoundedParam(c echo.Context, name string, defaultValue, max int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultValue
	}
	if value > max {
		return max
	}
	return value
}
