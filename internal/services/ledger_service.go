package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrFundCodeTaken = errors.New("a fund with that code already exists")
)

// ledgerService handles fund and ledger transaction operations
type ledgerService struct {
	fundRepo     repositories.FundRepositoryInterface
	ledgerRepo   repositories.LedgerTransactionRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	fundRepo repositories.FundRepositoryInterface,
	ledgerRepo repositories.LedgerTransactionRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		fundRepo:     fundRepo,
		ledgerRepo:   ledgerRepo,
		auditService: auditService,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateFund creates a new fund with a unique code
func (s *ledgerService) CreateFund(code, name, description, actor, ipAddress string) (*models.Fund, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	exists, err := s.fundRepo.CheckCodeExists(code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrFundCodeTaken
	}

	fund := &models.Fund{
		Code:        code,
		Name:        strings.TrimSpace(name),
		Description: description,
		Active:      true,
	}

	if err := s.fundRepo.Create(fund); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("fund.created", nil)

	if err := s.auditService.LogFundCreated(actor, ipAddress, fund.ID); err != nil {
		s.logger.Error("failed to audit fund creation",
			"fund_id", fund.ID,
			"error", err)
	}

	s.logger.Info("fund created", "fund_id", fund.ID, "code", fund.Code)

	return fund, nil
}

// GetFund retrieves a fund by ID
func (s *ledgerService) GetFund(id uuid.UUID) (*models.Fund, error) {
	return s.fundRepo.GetByID(id)
}

// ListFunds retrieves funds with pagination
func (s *ledgerService) ListFunds(offset, limit int) ([]models.Fund, int64, error) {
	return s.fundRepo.GetAll(offset, limit)
}

// CreateTransaction records a new ledger transaction against a fund
func (s *ledgerService) CreateTransaction(txn *models.LedgerTransaction, actor, ipAddress string) (*models.LedgerTransaction, error) {
	if _, err := s.fundRepo.GetByID(txn.FundID); err != nil {
		if errors.Is(err, repositories.ErrFundNotFound) {
			return nil, repositories.ErrFundNotFound
		}
		return nil, fmt.Errorf("failed to verify fund: %w", err)
	}

	txn.Status = models.TransactionStatusRecorded
	txn.EntryDate = models.DayOf(txn.EntryDate)
	txn.Reference = strings.TrimSpace(txn.Reference)

	if err := s.ledgerRepo.Create(txn); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("ledger.transaction.created", nil)

	if err := s.auditService.LogTransactionCreated(actor, ipAddress, txn.ID); err != nil {
		s.logger.Error("failed to audit transaction creation",
			"transaction_id", txn.ID,
			"error", err)
	}

	s.logger.Info("ledger transaction created",
		"transaction_id", txn.ID,
		"fund_id", txn.FundID,
		"entry_type", txn.EntryType,
		"amount", txn.Amount.String())

	return txn, nil
}

// GetTransaction retrieves a ledger transaction by ID
func (s *ledgerService) GetTransaction(id uuid.UUID) (*models.LedgerTransaction, error) {
	return s.ledgerRepo.GetByID(id)
}

// ListTransactions retrieves ledger transactions matching the filters
func (s *ledgerService) ListTransactions(filters models.TransactionFilters, offset, limit int) ([]models.LedgerTransaction, int64, error) {
	return s.ledgerRepo.GetWithFilters(filters, offset, limit)
}

// VoidTransaction marks a recorded transaction as voided. Reconciled
// transactions must be unreconciled first.
func (s *ledgerService) VoidTransaction(id uuid.UUID, actor, ipAddress string) (*models.LedgerTransaction, error) {
	txn, err := s.ledgerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := txn.Void(); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Update(txn); err != nil {
		return nil, err
	}

	if err := s.auditService.LogTransactionVoided(actor, ipAddress, txn.ID); err != nil {
		s.logger.Error("failed to audit transaction void",
			"transaction_id", txn.ID,
			"error", err)
	}

	s.logger.Info("ledger transaction voided", "transaction_id", txn.ID)

	return txn, nil
}
