package services

import (
	"io"
	"time"

	"parish-ledger/internal/models"

	"github.com/google/uuid"
)

// TransactionMatcherInterface matches parsed bank statement rows against
// ledger transactions
type TransactionMatcherInterface interface {
	// Match returns one result per bank row, in input order. Each ledger
	// transaction is claimed by at most one row.
	Match(bankRows []models.BankRow, existing []models.LedgerTransaction) []models.MatchResult
}

// StatementParserInterface parses uploaded bank statements into bank rows
type StatementParserInterface interface {
	Parse(r io.Reader) ([]models.BankRow, error)
}

// ReconciliationServiceInterface defines the contract for statement import
// and match review operations
type ReconciliationServiceInterface interface {
	ImportStatement(source string, statement io.Reader, actor, ipAddress string) (*models.ReconciliationSession, error)
	GetSession(sessionID uuid.UUID) (*models.ReconciliationSession, error)
	ListSessions(offset, limit int) ([]models.ReconciliationSession, int64, error)
	ConfirmMatch(sessionID uuid.UUID, rowIndex int, actor, ipAddress string) (*models.ReconciliationItem, error)
	RejectMatch(sessionID uuid.UUID, rowIndex int, actor, ipAddress string) (*models.ReconciliationItem, error)
}

// LedgerServiceInterface defines fund and ledger transaction operations
type LedgerServiceInterface interface {
	CreateFund(code, name, description, actor, ipAddress string) (*models.Fund, error)
	GetFund(id uuid.UUID) (*models.Fund, error)
	ListFunds(offset, limit int) ([]models.Fund, int64, error)
	CreateTransaction(txn *models.LedgerTransaction, actor, ipAddress string) (*models.LedgerTransaction, error)
	GetTransaction(id uuid.UUID) (*models.LedgerTransaction, error)
	ListTransactions(filters models.TransactionFilters, offset, limit int) ([]models.LedgerTransaction, int64, error)
	VoidTransaction(id uuid.UUID, actor, ipAddress string) (*models.LedgerTransaction, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetResourceActivity(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	LogStatementImported(actor, ipAddress string, importID uuid.UUID, rowCount int) error
	LogMatchConfirmed(actor, ipAddress string, sessionID uuid.UUID, rowIndex int, transactionID uuid.UUID) error
	LogMatchRejected(actor, ipAddress string, sessionID uuid.UUID, rowIndex int) error
	LogTransactionCreated(actor, ipAddress string, transactionID uuid.UUID) error
	LogTransactionVoided(actor, ipAddress string, transactionID uuid.UUID) error
	LogFundCreated(actor, ipAddress string, fundID uuid.UUID) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerSeederInterface generates realistic sample data for development
type LedgerSeederInterface interface {
	Seed(fundCount, transactionsPerFund int) error
	GenerateBankBatch(transactions []models.LedgerTransaction) []models.BankRow
}
