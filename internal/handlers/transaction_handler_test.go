package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finchat/internal/database"
	"finchat/internal/dto"
	"finchat/internal/models"
	"finchat/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    repositories.TransactionRepositoryInterface
	handler *TransactionHandler
	echo    *echo.Echo
}

func (suite *TransactionHandlerTestSuite) SetupSuite() {
	suite.db = database.SetupTestDB(suite.T())
	suite.repo = repositories.NewTransactionRepository(suite.db.DB)
	suite.handler = NewTransactionHandler(suite.repo)
	suite.echo = echo.New()
	suite.echo.Validator = NewValidator()
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	database.CleanupTestDB(suite.T(), suite.db)
}

func (suite *TransactionHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return suite.echo.NewContext(req, rec), rec
}

func (suite *TransactionHandlerTestSuite) seed(kind string, amount float64, description, category string) *models.Transaction {
	transaction := &models.Transaction{
		Kind:        kind,
		Amount:      decimal.NewFromFloat(amount),
		Description: description,
		Category:    category,
	}
	suite.Require().NoError(suite.repo.Create(transaction))
	return transaction
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction() {
	c, rec := suite.newContext(http.MethodPost, "/transactions",
		`{"kind":"expense","amount":50.5,"description":"almoço","category":"Alimentação"}`)

	suite.Require().NoError(suite.handler.CreateTransaction(c))
	suite.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.NotEqual(uuid.Nil, response.ID)
	suite.Equal("expense", response.Kind)
	suite.Equal("50.50", response.Amount)
	suite.Equal("almoço", response.Description)
	suite.False(response.CreatedAt.IsZero())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransactionDefaultsKind() {
	c, rec := suite.newContext(http.MethodPost, "/transactions",
		`{"amount":30,"description":"uber"}`)

	suite.Require().NoError(suite.handler.CreateTransaction(c))
	suite.Equal(http.StatusCreated, rec.Code)

	var response dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Equal("expense", response.Kind)
	suite.Equal("Uncategorized", response.Category)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransactionValidation() {
	testCases := []struct {
		name string
		body string
	}{
		{"missing description", `{"amount":10}`},
		{"invalid kind", `{"kind":"transfer","amount":10,"description":"x"}`},
		{"missing amount", `{"description":"almoço"}`},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			c, rec := suite.newContext(http.MethodPost, "/transactions", tc.body)

			suite.Require().NoError(suite.handler.CreateTransaction(c))
			suite.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (suite *TransactionHandlerTestSuite) TestListTransactions() {
	suite.seed(models.KindExpense, 50.5, "almoço", "Alimentação")
	suite.seed(models.KindIncome, 1200, "salário", "Renda")

	c, rec := suite.newContext(http.MethodGet, "/transactions", "")

	suite.Require().NoError(suite.handler.ListTransactions(c))
	suite.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Equal(int64(2), response.Total)
	suite.Len(response.Transactions, 2)
	suite.Equal(defaultPageLimit, response.Limit)
}

func (suite *TransactionHandlerTestSuite) TestListTransactionsFiltered() {
	suite.seed(models.KindExpense, 50.5, "almoço", "Alimentação")
	suite.seed(models.KindIncome, 1200, "salário", "Renda")

	c, rec := suite.newContext(http.MethodGet, "/transactions?kind=expense&category=aliment", "")

	suite.Require().NoError(suite.handler.ListTransactions(c))
	suite.Equal(http.StatusOK, rec.Code)

	var response dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Transactions, 1)
	suite.Equal("almoço", response.Transactions[0].Description)
}

func (suite *TransactionHandlerTestSuite) TestListTransactionsInvalidDate() {
	c, rec := suite.newContext(http.MethodGet, "/transactions?date_start=yesterday", "")

	suite.Require().NoError(suite.handler.ListTransactions(c))
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactionsPagination() {
	for i := 0; i < 5; i++ {
		suite.seed(models.KindExpense, float64(10+i), "compra", "Mercado")
	}

	c, rec := suite.newContext(http.MethodGet, "/transactions?offset=2&limit=2", "")

	suite.Require().NoError(suite.handler.ListTransactions(c))

	var response dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Equal(int64(5), response.Total)
	suite.Len(response.Transactions, 2)
	suite.Equal(2, response.Offset)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction() {
	seeded := suite.seed(models.KindExpense, 23, "uber", "Transporte")

	c, rec := suite.newContext(http.MethodGet, "/transactions/"+seeded.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID.String())

	suite.Require().NoError(suite.handler.GetTransaction(c))
	suite.Equal(http.StatusOK, rec.Code)

	var response dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	suite.Equal(seeded.ID, response.ID)
	suite.Equal("23.00", response.Amount)
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionNotFound() {
	id := uuid.New()
	c, rec := suite.newContext(http.MethodGet, "/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.Require().NoError(suite.handler.GetTransaction(c))
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionInvalidID() {
	c, rec := suite.newContext(http.MethodGet, "/transactions/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	suite.Require().NoError(suite.handler.GetTransaction(c))
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction() {
	seeded := suite.seed(models.KindExpense, 23, "uber", "Transporte")

	c, rec := suite.newContext(http.MethodDelete, "/transactions/"+seeded.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID.String())

	suite.Require().NoError(suite.handler.DeleteTransaction(c))
	suite.Equal(http.StatusNoContent, rec.Code)

	_, err := suite.repo.GetByID(seeded.ID)
	suite.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransactionNotFound() {
	id := uuid.New()
	c, rec := suite.newContext(http.MethodDelete, "/transactions/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.Require().NoError(suite.handler.DeleteTransaction(c))
	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
