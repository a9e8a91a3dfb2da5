package services

import (
	"log/slog"
	"testing"
	"time"

	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"
	"parish-ledger/internal/repositories/repository_mocks"
	"parish-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerServiceTestSuite is the test suite for the ledger service
type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockFundRepo   *repository_mocks.MockFundRepositoryInterface
	mockLedgerRepo *repository_mocks.MockLedgerTransactionRepositoryInterface
	auditService   *service_mocks.MockAuditServiceInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	service        LedgerServiceInterface
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockFundRepo = repository_mocks.NewMockFundRepositoryInterface(s.ctrl)
	s.mockLedgerRepo = repository_mocks.NewMockLedgerTransactionRepositoryInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewLedgerService(s.mockFundRepo, s.mockLedgerRepo, s.auditService, s.metrics, slog.Default())
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestCreateFund_Success() {
	s.mockFundRepo.EXPECT().CheckCodeExists("MISIONES").Return(false, nil)
	s.mockFundRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("fund.created", nil)
	s.auditService.EXPECT().LogFundCreated("tesorero", "10.0.0.1", gomock.Any()).Return(nil)

	fund, err := s.service.CreateFund("  misiones ", " Fondo de Misiones ", "Apoyo a misioneros", "tesorero", "10.0.0.1")
	s.Require().NoError(err)
	s.Equal("MISIONES", fund.Code)
	s.Equal("Fondo de Misiones", fund.Name)
	s.True(fund.Active)
}

func (s *LedgerServiceTestSuite) TestCreateFund_CodeTaken() {
	s.mockFundRepo.EXPECT().CheckCodeExists("GENERAL").Return(true, nil)

	_, err := s.service.CreateFund("general", "Fondo General", "", "tesorero", "10.0.0.1")
	s.ErrorIs(err, ErrFundCodeTaken)
}

func (s *LedgerServiceTestSuite) TestCreateTransaction_Success() {
	fundID := uuid.New()
	s.mockFundRepo.EXPECT().GetByID(fundID).Return(&models.Fund{ID: fundID, Code: "GENERAL"}, nil)
	s.mockLedgerRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncrementCounter("ledger.transaction.created", nil)
	s.auditService.EXPECT().LogTransactionCreated("tesorero", "10.0.0.1", gomock.Any()).Return(nil)

	txn := &models.LedgerTransaction{
		FundID:      fundID,
		EntryType:   models.EntryTypeIncome,
		Amount:      decimal.NewFromInt(50000),
		Description: "Diezmo Juan Perez",
		Reference:   " OP12345 ",
		EntryDate:   time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		Status:      models.TransactionStatusReconciled, // must be reset
	}

	created, err := s.service.CreateTransaction(txn, "tesorero", "10.0.0.1")
	s.Require().NoError(err)
	s.Equal(models.TransactionStatusRecorded, created.Status)
	s.Equal("OP12345", created.Reference)
	s.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), created.EntryDate)
}

func (s *LedgerServiceTestSuite) TestCreateTransaction_FundMissing() {
	fundID := uuid.New()
	s.mockFundRepo.EXPECT().GetByID(fundID).Return(nil, repositories.ErrFundNotFound)

	txn := &models.LedgerTransaction{FundID: fundID, Amount: decimal.NewFromInt(100)}

	_, err := s.service.CreateTransaction(txn, "tesorero", "10.0.0.1")
	s.ErrorIs(err, repositories.ErrFundNotFound)
}

func (s *LedgerServiceTestSuite) TestVoidTransaction_Success() {
	txnID := uuid.New()
	txn := &models.LedgerTransaction{ID: txnID, Status: models.TransactionStatusRecorded}

	s.mockLedgerRepo.EXPECT().GetByID(txnID).Return(txn, nil)
	s.mockLedgerRepo.EXPECT().Update(txn).Return(nil)
	s.auditService.EXPECT().LogTransactionVoided("tesorero", "10.0.0.1", txnID).Return(nil)

	voided, err := s.service.VoidTransaction(txnID, "tesorero", "10.0.0.1")
	s.Require().NoError(err)
	s.Equal(models.TransactionStatusVoided, voided.Status)
}

func (s *LedgerServiceTestSuite) TestVoidTransaction_ReconciledRejected() {
	txnID := uuid.New()
	txn := &models.LedgerTransaction{ID: txnID, Status: models.TransactionStatusReconciled}

	s.mockLedgerRepo.EXPECT().GetByID(txnID).Return(txn, nil)

	_, err := s.service.VoidTransaction(txnID, "tesorero", "10.0.0.1")
	s.ErrorIs(err, models.ErrInvalidStatusTransition)
}

func (s *LedgerServiceTestSuite) TestListTransactions_ForwardsFilters() {
	filters := models.TransactionFilters{Status: models.TransactionStatusRecorded}
	s.mockLedgerRepo.EXPECT().GetWithFilters(filters, 0, 50).Return([]models.LedgerTransaction{{}}, int64(1), nil)

	txns, total, err := s.service.ListTransactions(filters, 0, 50)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(txns, 1)
}
