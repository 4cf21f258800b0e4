package repositories

import (
	"finchat/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the persistence contract used by the
// message pipeline (create + read) and the REST surface (full CRUD).
type TransactionRepositoryInterface interface {
	// Create persists a new transaction; the store assigns id and created_at.
	Create(transaction *models.Transaction) error

	// GetByID retrieves a transaction by ID
	GetByID(id uuid.UUID) (*models.Transaction, error)

	// ListWithFilters retrieves transactions matching the filters, most
	// recent first. A non-positive limit means no cap.
	ListWithFilters(filters models.TransactionFilters, limit int) ([]models.Transaction, error)

	// SumAmount returns the total amount over matching transactions; zero
	// matches yield decimal zero.
	SumAmount(filters models.TransactionFilters) (decimal.Decimal, error)

	// ListPage retrieves a page of transactions plus the total match count
	ListPage(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error)

	// Delete removes a transaction by ID
	Delete(id uuid.UUID) error
}
