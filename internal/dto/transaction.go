package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest is the REST payload for recording a transaction
// directly, bypassing the chat pipeline.
type CreateTransactionRequest struct {
	Kind        string  `json:"kind" validate:"omitempty,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"required,gte=0"`
	Description string  `json:"description" validate:"required,max=500"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
}

// TransactionFilters contains the query parameters accepted when listing
// transactions. Dates use YYYY-MM-DD and are inclusive on both ends.
type TransactionFilters struct {
	DateStart string `query:"date_start"`
	DateEnd   string `query:"date_end"`
	Kind      string `query:"kind"`
	Category  string `query:"category"`
}

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Offset int `query:"offset"`
	Limit  int `query:"limit"`
}

// TransactionResponse is the REST representation of a transaction
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}
