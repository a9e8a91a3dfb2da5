package services

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"parish-ledger/internal/config"
	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"
	"parish-ledger/internal/repositories/repository_mocks"
	"parish-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ReconciliationServiceTestSuite is the test suite for the reconciliation service
type ReconciliationServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockLedgerRepo *repository_mocks.MockLedgerTransactionRepositoryInterface
	mockReconRepo  *repository_mocks.MockReconciliationRepositoryInterface
	auditService   *service_mocks.MockAuditServiceInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	cfg            config.ReconciliationConfig
}

func (s *ReconciliationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLedgerRepo = repository_mocks.NewMockLedgerTransactionRepositoryInterface(s.ctrl)
	s.mockReconRepo = repository_mocks.NewMockReconciliationRepositoryInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.cfg = config.ReconciliationConfig{MaxStatementRows: 1000}
}

func (s *ReconciliationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconciliationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}

// newService wires the real parser and matcher against the mocked
// repositories; both are pure and deterministic
func (s *ReconciliationServiceTestSuite) newService() ReconciliationServiceInterface {
	return NewReconciliationService(
		NewStatementParser(),
		NewTransactionMatcher(),
		s.mockLedgerRepo,
		s.mockReconRepo,
		s.auditService,
		s.metrics,
		s.cfg,
		slog.Default(),
	)
}

func (s *ReconciliationServiceTestSuite) allowMetrics() {
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *ReconciliationServiceTestSuite) recordedTxn(amount string, entryDate time.Time, reference string) models.LedgerTransaction {
	return models.LedgerTransaction{
		ID:          uuid.New(),
		FundID:      uuid.New(),
		EntryType:   models.EntryTypeIncome,
		Amount:      decimal.RequireFromString(amount),
		Description: "Diezmo Juan Perez",
		Reference:   reference,
		EntryDate:   models.DayOf(entryDate),
		Status:      models.TransactionStatusRecorded,
	}
}

const importCSV = `date,amount,description,reference
2025-03-10,50000,TRANSFERENCIA JUAN PEREZ,op12345
2025-03-12,-48990,PAGO PROVEEDOR,
`

func (s *ReconciliationServiceTestSuite) TestImportStatement_Success() {
	txn := s.recordedTxn("50000", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "OP12345")

	s.mockLedgerRepo.EXPECT().
		GetUnreconciledByDateRange(
			time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC),
		).
		Return([]models.LedgerTransaction{txn}, nil)

	s.mockReconRepo.EXPECT().CreateImport(gomock.Any()).Return(nil)
	s.mockReconRepo.EXPECT().CreateSession(gomock.Any()).Return(nil)
	s.mockReconRepo.EXPECT().CountPendingItems().Return(int64(1), nil)
	s.mockLedgerRepo.EXPECT().CountByStatus(models.TransactionStatusReconciled).Return(int64(1), nil)
	s.auditService.EXPECT().LogStatementImported("tesorero", "10.0.0.1", gomock.Any(), 2).Return(nil)
	s.allowMetrics()

	session, err := s.newService().ImportStatement("banco_marzo.csv", strings.NewReader(importCSV), "tesorero", "10.0.0.1")
	s.Require().NoError(err)

	s.Equal(2, session.RowCount)
	s.Equal(1, session.ExactCount)
	s.Equal(0, session.StrongCount)
	s.Equal(0, session.FuzzyCount)
	s.Equal(1, session.NoneCount)
	s.Require().Len(session.Items, 2)

	matched := session.Items[0]
	s.Equal(0, matched.RowIndex)
	s.Equal(models.MatchTypeExact, matched.MatchType)
	s.Equal(models.ConfidenceExact, matched.Confidence)
	s.Require().NotNil(matched.MatchedTransactionID)
	s.Equal(txn.ID, *matched.MatchedTransactionID)
	s.Equal(models.ReviewStatusPending, matched.ReviewStatus)

	unmatched := session.Items[1]
	s.Equal(1, unmatched.RowIndex)
	s.Equal(models.MatchTypeNone, unmatched.MatchType)
	s.Nil(unmatched.MatchedTransactionID)
	s.True(unmatched.BankAmount.Equal(decimal.NewFromInt(-48990)))
}

func (s *ReconciliationServiceTestSuite) TestImportStatement_ParserRejectsStatement() {
	badCSV := "date,amount,description\n2025-03-10,not-a-number,X\n"

	_, err := s.newService().ImportStatement("bad.csv", strings.NewReader(badCSV), "tesorero", "10.0.0.1")
	s.Error(err)
}

func (s *ReconciliationServiceTestSuite) TestImportStatement_TooManyRows() {
	s.cfg.MaxStatementRows = 1

	_, err := s.newService().ImportStatement("big.csv", strings.NewReader(importCSV), "tesorero", "10.0.0.1")
	s.ErrorIs(err, ErrStatementTooLarge)
}

func (s *ReconciliationServiceTestSuite) TestImportStatement_AutoConfirmExact() {
	s.cfg.AutoConfirmExact = true
	txn := s.recordedTxn("50000", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "OP12345")

	s.mockLedgerRepo.EXPECT().
		GetUnreconciledByDateRange(gomock.Any(), gomock.Any()).
		Return([]models.LedgerTransaction{txn}, nil)
	s.mockLedgerRepo.EXPECT().GetByID(txn.ID).Return(&txn, nil)
	s.mockLedgerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.LedgerTransaction) error {
		s.Equal(models.TransactionStatusReconciled, updated.Status)
		return nil
	})

	s.mockReconRepo.EXPECT().CreateImport(gomock.Any()).Return(nil)
	s.mockReconRepo.EXPECT().CreateSession(gomock.Any()).Return(nil)
	s.mockReconRepo.EXPECT().CountPendingItems().Return(int64(0), nil)
	s.mockLedgerRepo.EXPECT().CountByStatus(models.TransactionStatusReconciled).Return(int64(1), nil)
	s.auditService.EXPECT().LogStatementImported(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.allowMetrics()

	session, err := s.newService().ImportStatement("banco_marzo.csv", strings.NewReader(importCSV), "tesorero", "10.0.0.1")
	s.Require().NoError(err)

	s.Equal(models.ReviewStatusConfirmed, session.Items[0].ReviewStatus)
	s.Equal(models.ReviewStatusPending, session.Items[1].ReviewStatus)
}

func (s *ReconciliationServiceTestSuite) sessionWithItem(txnID *uuid.UUID, reviewStatus string) *models.ReconciliationSession {
	return &models.ReconciliationSession{
		ID:       uuid.New(),
		ImportID: uuid.New(),
		RowCount: 1,
		Items: []models.ReconciliationItem{
			{
				ID:                   uuid.New(),
				RowIndex:             0,
				BankDate:             time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				BankAmount:           decimal.NewFromInt(50000),
				BankDescription:      "TRANSFERENCIA JUAN PEREZ",
				MatchedTransactionID: txnID,
				Confidence:           models.ConfidenceExact,
				MatchType:            models.MatchTypeExact,
				ReviewStatus:         reviewStatus,
			},
		},
	}
}

func (s *ReconciliationServiceTestSuite) TestConfirmMatch_Success() {
	txn := s.recordedTxn("50000", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "OP12345")
	session := s.sessionWithItem(&txn.ID, models.ReviewStatusPending)

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)
	s.mockLedgerRepo.EXPECT().GetByID(txn.ID).Return(&txn, nil)
	s.mockLedgerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.LedgerTransaction) error {
		s.Equal(models.TransactionStatusReconciled, updated.Status)
		s.NotNil(updated.ReconciledAt)
		return nil
	})
	s.mockReconRepo.EXPECT().UpdateItem(gomock.Any()).Return(nil)
	s.mockReconRepo.EXPECT().CountPendingItems().Return(int64(0), nil)
	s.mockLedgerRepo.EXPECT().CountByStatus(models.TransactionStatusReconciled).Return(int64(1), nil)
	s.auditService.EXPECT().LogMatchConfirmed("tesorero", "10.0.0.1", session.ID, 0, txn.ID).Return(nil)
	s.allowMetrics()

	item, err := s.newService().ConfirmMatch(session.ID, 0, "tesorero", "10.0.0.1")
	s.Require().NoError(err)
	s.Equal(models.ReviewStatusConfirmed, item.ReviewStatus)
	s.NotNil(item.ReviewedAt)
}

func (s *ReconciliationServiceTestSuite) TestConfirmMatch_NoMatchedTransaction() {
	session := s.sessionWithItem(nil, models.ReviewStatusPending)
	session.Items[0].MatchType = models.MatchTypeNone
	session.Items[0].Confidence = models.ConfidenceNone

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)

	_, err := s.newService().ConfirmMatch(session.ID, 0, "tesorero", "10.0.0.1")
	s.ErrorIs(err, models.ErrItemHasNoMatch)
}

func (s *ReconciliationServiceTestSuite) TestConfirmMatch_AlreadyReviewed() {
	txnID := uuid.New()
	session := s.sessionWithItem(&txnID, models.ReviewStatusConfirmed)

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)

	_, err := s.newService().ConfirmMatch(session.ID, 0, "tesorero", "10.0.0.1")
	s.ErrorIs(err, models.ErrItemAlreadyReviewed)
}

func (s *ReconciliationServiceTestSuite) TestConfirmMatch_RowIndexUnknown() {
	txnID := uuid.New()
	session := s.sessionWithItem(&txnID, models.ReviewStatusPending)

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)

	_, err := s.newService().ConfirmMatch(session.ID, 7, "tesorero", "10.0.0.1")
	s.ErrorIs(err, ErrRowIndexOutOfRange)
}

func (s *ReconciliationServiceTestSuite) TestConfirmMatch_TransactionGone() {
	txnID := uuid.New()
	session := s.sessionWithItem(&txnID, models.ReviewStatusPending)

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)
	s.mockLedgerRepo.EXPECT().GetByID(txnID).Return(nil, repositories.ErrLedgerTransactionNotFound)

	_, err := s.newService().ConfirmMatch(session.ID, 0, "tesorero", "10.0.0.1")
	s.ErrorIs(err, ErrMatchedTransactionGone)
}

func (s *ReconciliationServiceTestSuite) TestConfirmMatch_TransactionAlreadyReconciled() {
	txn := s.recordedTxn("50000", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "OP12345")
	txn.Status = models.TransactionStatusReconciled
	session := s.sessionWithItem(&txn.ID, models.ReviewStatusPending)

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)
	s.mockLedgerRepo.EXPECT().GetByID(txn.ID).Return(&txn, nil)

	_, err := s.newService().ConfirmMatch(session.ID, 0, "tesorero", "10.0.0.1")
	s.ErrorIs(err, models.ErrInvalidStatusTransition)
}

func (s *ReconciliationServiceTestSuite) TestConfirmMatch_ItemPersistFailureRevertsTransaction() {
	txn := s.recordedTxn("50000", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "OP12345")
	session := s.sessionWithItem(&txn.ID, models.ReviewStatusPending)
	persistErr := errors.New("database is locked")

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)
	s.mockLedgerRepo.EXPECT().GetByID(txn.ID).Return(&txn, nil)

	gomock.InOrder(
		s.mockLedgerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.LedgerTransaction) error {
			s.Equal(models.TransactionStatusReconciled, updated.Status)
			return nil
		}),
		s.mockLedgerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.LedgerTransaction) error {
			s.Equal(models.TransactionStatusRecorded, updated.Status)
			s.Nil(updated.ReconciledAt)
			return nil
		}),
	)
	s.mockReconRepo.EXPECT().UpdateItem(gomock.Any()).Return(persistErr)

	_, err := s.newService().ConfirmMatch(session.ID, 0, "tesorero", "10.0.0.1")
	s.ErrorIs(err, persistErr)
}

func (s *ReconciliationServiceTestSuite) TestRejectMatch_Success() {
	txnID := uuid.New()
	session := s.sessionWithItem(&txnID, models.ReviewStatusPending)

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)
	s.mockReconRepo.EXPECT().UpdateItem(gomock.Any()).Return(nil)
	s.mockReconRepo.EXPECT().CountPendingItems().Return(int64(0), nil)
	s.mockLedgerRepo.EXPECT().CountByStatus(models.TransactionStatusReconciled).Return(int64(1), nil)
	s.auditService.EXPECT().LogMatchRejected("tesorero", "10.0.0.1", session.ID, 0).Return(nil)
	s.allowMetrics()

	// No ledger update happens: rejecting leaves the transaction recorded
	item, err := s.newService().RejectMatch(session.ID, 0, "tesorero", "10.0.0.1")
	s.Require().NoError(err)
	s.Equal(models.ReviewStatusRejected, item.ReviewStatus)
}

func (s *ReconciliationServiceTestSuite) TestRejectMatch_AlreadyReviewed() {
	txnID := uuid.New()
	session := s.sessionWithItem(&txnID, models.ReviewStatusRejected)

	s.mockReconRepo.EXPECT().GetSessionByID(session.ID).Return(session, nil)

	_, err := s.newService().RejectMatch(session.ID, 0, "tesorero", "10.0.0.1")
	s.ErrorIs(err, models.ErrItemAlreadyReviewed)
}

func (s *ReconciliationServiceTestSuite) TestGetSession_PassThrough() {
	sessionID := uuid.New()
	expectedErr := errors.New("boom")

	s.mockReconRepo.EXPECT().GetSessionByID(sessionID).Return(nil, expectedErr)

	_, err := s.newService().GetSession(sessionID)
	s.Equal(expectedErr, err)
}

func (s *ReconciliationServiceTestSuite) TestListSessions_PassThrough() {
	s.mockReconRepo.EXPECT().ListSessions(0, 20).Return([]models.ReconciliationSession{{}}, int64(1), nil)

	sessions, total, err := s.newService().ListSessions(0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(sessions, 1)
}
