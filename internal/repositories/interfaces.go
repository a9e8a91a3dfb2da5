package repositories

import (
	"time"

	"parish-ledger/internal/models"

	"github.com/google/uuid"
)

// FundRepositoryInterface defines the contract for fund repository operations
type FundRepositoryInterface interface {
	Create(fund *models.Fund) error
	GetByID(id uuid.UUID) (*models.Fund, error)
	GetByCode(code string) (*models.Fund, error)
	GetAll(offset, limit int) ([]models.Fund, int64, error)
	Update(fund *models.Fund) error
	CheckCodeExists(code string) (bool, error)
}

// LedgerTransactionRepositoryInterface defines the contract for ledger transaction repository operations
type LedgerTransactionRepositoryInterface interface {
	Create(transaction *models.LedgerTransaction) error
	CreateBatch(transactions []models.LedgerTransaction) error
	GetByID(id uuid.UUID) (*models.LedgerTransaction, error)
	GetWithFilters(filters models.TransactionFilters, offset, limit int) ([]models.LedgerTransaction, int64, error)
	GetUnreconciledByDateRange(startDate, endDate time.Time) ([]models.LedgerTransaction, error)
	Update(transaction *models.LedgerTransaction) error
	CountByStatus(status string) (int64, error)
}

// ReconciliationRepositoryInterface defines the contract for statement import and
// reconciliation session persistence
type ReconciliationRepositoryInterface interface {
	CreateImport(stmtImport *models.StatementImport) error
	CreateSession(session *models.ReconciliationSession) error
	GetSessionByID(id uuid.UUID) (*models.ReconciliationSession, error)
	ListSessions(offset, limit int) ([]models.ReconciliationSession, int64, error)
	UpdateItem(item *models.ReconciliationItem) error
	CountPendingItems() (int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetRecent(limit int) ([]*models.AuditLog, error)
}
