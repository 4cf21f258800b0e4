package repositories

import (
	"errors"
	"fmt"
	"strings"

	"finchat/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListWithFilters retrieves transactions matching the filters, most recent first
func (r *transactionRepository) ListWithFilters(filters models.TransactionFilters, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := applyFilters(r.db.Model(&models.Transaction{}), filters).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// SumAmount returns the total amount over matching transactions
func (r *transactionRepository) SumAmount(filters models.TransactionFilters) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	if err := applyFilters(r.db.Model(&models.Transaction{}), filters).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return result.Total, nil
}

// ListPage retrieves a page of transactions plus the total match count
func (r *transactionRepository) ListPage(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := applyFilters(r.db.Model(&models.Transaction{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// applyFilters translates the closed filter set into WHERE clauses. Date
// bounds compare the calendar date inclusively on both ends: the end bound
// becomes created_at < end+24h so a 23:59 record on the end date matches.
func applyFilters(query *gorm.DB, filters models.TransactionFilters) *gorm.DB {
	if filters.DateStart != nil {
		query = query.Where("created_at >= ?", *filters.DateStart)
	}
	if filters.DateEnd != nil {
		query = query.Where("created_at < ?", filters.DateEnd.AddDate(0, 0, 1))
	}
	if filters.Kind != "" {
		query = query.Where("kind = ?", filters.Kind)
	}
	if filters.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filters.Category)+"%")
	}
	return query
}
