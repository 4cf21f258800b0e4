package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	KindIncome  = "income"
	KindExpense = "expense"

	// DefaultCategory is the sentinel stored when no category was supplied.
	DefaultCategory = "Uncategorized"
)

var (
	ErrInvalidKind    = errors.New("invalid transaction kind")
	ErrNegativeAmount = errors.New("transaction amount must not be negative")
)

// Transaction is a single ledger entry. The message pipeline only creates and
// reads transactions; it never updates or deletes them.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Kind        string          `gorm:"type:varchar(10);not null;index" json:"kind"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Category == "" {
		t.Category = DefaultCategory
	}

	// Set timestamp if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidKind(t.Kind) {
		return ErrInvalidKind
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	return nil
}

// IsExpense returns true if the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// IsIncome returns true if the transaction is an income
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidKind checks if the transaction kind is valid
func IsValidKind(kind string) bool {
	switch kind {
	case KindIncome, KindExpense:
		return true
	default:
		return false
	}
}
