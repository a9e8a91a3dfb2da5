package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parish-ledger/internal/dto"
	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"
	"parish-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionHandlerSuite defines the test suite for TransactionHandler
type TransactionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockLedgerServiceInterface
	handler     *TransactionHandler
	echo        *echo.Echo
	testFundID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testFundID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestTransactionHandlerSuite runs the test suite
func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("X-Actor", "tesorero")

	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *TransactionHandlerSuite) validRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		FundID:      s.testFundID.String(),
		EntryType:   "income",
		Amount:      "50000",
		Description: "Diezmo Juan Perez",
		Reference:   "OP12345",
		EntryDate:   "2025-03-10",
	}
}

func (s *TransactionHandlerSuite) TestCreateTransaction_Success() {
	reqBody := s.validRequest()

	s.mockService.EXPECT().
		CreateTransaction(gomock.Any(), "tesorero", gomock.Any()).
		DoAndReturn(func(txn *models.LedgerTransaction, actor, ip string) (*models.LedgerTransaction, error) {
			s.Equal(s.testFundID, txn.FundID)
			s.Equal(models.EntryTypeIncome, txn.EntryType)
			s.True(txn.Amount.Equal(decimal.NewFromInt(50000)))
			s.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), txn.EntryDate)
			s.Equal(models.TransactionStatusRecorded, txn.Status)
			txn.ID = uuid.New()
			return txn, nil
		})

	c, rec := s.createContext(http.MethodPost, "/transactions", reqBody)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CreateTransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Transaction recorded successfully", resp.Message)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_BadEntryType() {
	reqBody := s.validRequest()
	reqBody.EntryType = "transferencia"

	c, rec := s.createContext(http.MethodPost, "/transactions", reqBody)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_BadAmount() {
	reqBody := s.validRequest()
	reqBody.Amount = "cincuenta mil"

	c, rec := s.createContext(http.MethodPost, "/transactions", reqBody)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_BadDate() {
	reqBody := s.validRequest()
	reqBody.EntryDate = "10/03/2025"

	c, rec := s.createContext(http.MethodPost, "/transactions", reqBody)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_FundMissing() {
	reqBody := s.validRequest()

	s.mockService.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, repositories.ErrFundNotFound)

	c, rec := s.createContext(http.MethodPost, "/transactions", reqBody)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TransactionHandlerSuite) TestGetTransaction_NotFound() {
	txnID := uuid.New()
	s.mockService.EXPECT().
		GetTransaction(txnID).
		Return(nil, repositories.ErrLedgerTransactionNotFound)

	c, rec := s.createContext(http.MethodGet, "/transactions/"+txnID.String(), nil)
	c.SetParamNames("transactionId")
	c.SetParamValues(txnID.String())

	s.Require().NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_WithFilters() {
	s.mockService.EXPECT().
		ListTransactions(gomock.Any(), 0, 50).
		DoAndReturn(func(filters models.TransactionFilters, offset, limit int) ([]models.LedgerTransaction, int64, error) {
			s.Require().NotNil(filters.FundID)
			s.Equal(s.testFundID, *filters.FundID)
			s.Equal(models.TransactionStatusRecorded, filters.Status)
			s.Require().NotNil(filters.StartDate)
			s.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
			return []models.LedgerTransaction{{}}, 1, nil
		})

	path := "/transactions?fund_id=" + s.testFundID.String() + "&status=recorded&date_from=2025-03-01"
	c, rec := s.createContext(http.MethodGet, path, nil)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_BadFundFilter() {
	c, rec := s.createContext(http.MethodGet, "/transactions?fund_id=nope", nil)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerSuite) TestVoidTransaction_Success() {
	txnID := uuid.New()
	s.mockService.EXPECT().
		VoidTransaction(txnID, "tesorero", gomock.Any()).
		Return(&models.LedgerTransaction{ID: txnID, Status: models.TransactionStatusVoided}, nil)

	c, rec := s.createContext(http.MethodPost, "/transactions/"+txnID.String()+"/void", nil)
	c.SetParamNames("transactionId")
	c.SetParamValues(txnID.String())

	s.Require().NoError(s.handler.VoidTransaction(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestVoidTransaction_AlreadyReconciled() {
	txnID := uuid.New()
	s.mockService.EXPECT().
		VoidTransaction(txnID, gomock.Any(), gomock.Any()).
		Return(nil, models.ErrInvalidStatusTransition)

	c, rec := s.createContext(http.MethodPost, "/transactions/"+txnID.String()+"/void", nil)
	c.SetParamNames("transactionId")
	c.SetParamValues(txnID.String())

	s.Require().NoError(s.handler.VoidTransaction(c))
	s.Equal(http.StatusConflict, rec.Code)
}
