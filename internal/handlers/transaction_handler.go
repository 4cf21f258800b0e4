package handlers

import (
	"net/http"
	"time"

	"finchat/internal/dto"
	"finchat/internal/errors"
	"finchat/internal/models"
	"finchat/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	repo repositories.TransactionRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(repo repositories.TransactionRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{repo: repo}
}

// CreateTransaction records a transaction directly, bypassing the chat pipeline
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	kind := req.Kind
	if kind == "" {
		kind = models.KindExpense
	}

	transaction := &models.Transaction{
		Kind:        kind,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Category:    req.Category,
	}

	if err := h.repo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// ListTransactions retrieves filtered transactions, most recent first
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	pagination := parsePaginationParams(c)

	transactions, total, err := h.repo.ListPage(filters, pagination.Offset, pagination.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Total:        total,
		Offset:       pagination.Offset,
		Limit:        pagination.Limit,
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, toTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, response)
}

// GetTransaction retrieves a single transaction by ID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.repo.GetByID(id)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction removes a transaction by ID
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.repo.Delete(id); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toTransactionResponse(transaction *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          transaction.ID,
		Kind:        transaction.Kind,
		Amount:      transaction.Amount.StringFixed(2),
		Description: transaction.Description,
		Category:    transaction.Category,
		CreatedAt:   transaction.CreatedAt,
	}
}

func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var query dto.TransactionFilters
	if err := c.Bind(&query); err != nil {
		return models.TransactionFilters{}, err
	}

	var filters models.TransactionFilters
	if query.DateStart != "" {
		day, err := time.Parse("2006-01-02", query.DateStart)
		if err != nil {
			return models.TransactionFilters{}, err
		}
		filters.DateStart = &day
	}
	if query.DateEnd != "" {
		day, err := time.Parse("2006-01-02", query.DateEnd)
		if err != nil {
			return models.TransactionFilters{}, err
		}
		filters.DateEnd = &day
	}
	if models.IsValidKind(query.Kind) {
		filters.Kind = query.Kind
	}
	filters.Category = query.Category

	return filters, nil
}

func parsePaginationParams(c echo.Context) dto.PaginationParams {
	var pagination dto.PaginationParams
	if err := c.Bind(&pagination); err != nil {
		return dto.PaginationParams{Limit: defaultPageLimit}
	}

	if pagination.Limit <= 0 {
		pagination.Limit = defaultPageLimit
	}
	if pagination.Limit > maxPageLimit {
		pagination.Limit = maxPageLimit
	}
	if pagination.Offset < 0 {
		pagination.Offset = 0
	}

	return pagination
}
