package services

import (
	"errors"
	"fmt"

	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditLog = errors.New("invalid audit log")
)

// ValidateAuditAction validates that the action is one of the allowed actions
func ValidateAuditAction(action string) error {
	validActions := map[string]bool{
		models.AuditActionStatementImported:  true,
		models.AuditActionMatchConfirmed:     true,
		models.AuditActionMatchRejected:      true,
		models.AuditActionTransactionCreated: true,
		models.AuditActionTransactionVoided:  true,
		models.AuditActionFundCreated:        true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid audit action: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateAuditAction(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetResourceActivity retrieves audit entries for a specific resource with pagination
func (s *AuditService) GetResourceActivity(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return s.repo.GetByResource(resource, resourceID, offset, limit)
}

// LogStatementImported records a statement import event
func (s *AuditService) LogStatementImported(actor, ipAddress string, importID uuid.UUID, rowCount int) error {
	log := &models.AuditLog{
		Actor:      actor,
		Action:     models.AuditActionStatementImported,
		Resource:   "statement_import",
		ResourceID: importID.String(),
		IPAddress:  ipAddress,
	}
	log.SetMetadata("row_count", rowCount)

	return s.CreateAuditLog(log)
}

// LogMatchConfirmed records a reviewer accepting a proposed match
func (s *AuditService) LogMatchConfirmed(actor, ipAddress string, sessionID uuid.UUID, rowIndex int, transactionID uuid.UUID) error {
	log := &models.AuditLog{
		Actor:      actor,
		Action:     models.AuditActionMatchConfirmed,
		Resource:   "reconciliation_session",
		ResourceID: sessionID.String(),
		IPAddress:  ipAddress,
	}
	log.SetMetadata("row_index", rowIndex)
	log.SetMetadata("transaction_id", transactionID.String())

	return s.CreateAuditLog(log)
}

// LogMatchRejected records a reviewer refusing a proposed match
func (s *AuditService) LogMatchRejected(actor, ipAddress string, sessionID uuid.UUID, rowIndex int) error {
	log := &models.AuditLog{
		Actor:      actor,
		Action:     models.AuditActionMatchRejected,
		Resource:   "reconciliation_session",
		ResourceID: sessionID.String(),
		IPAddress:  ipAddress,
	}
	log.SetMetadata("row_index", rowIndex)

	return s.CreateAuditLog(log)
}

// LogTransactionCreated records a new ledger transaction
func (s *AuditService) LogTransactionCreated(actor, ipAddress string, transactionID uuid.UUID) error {
	log := &models.AuditLog{
		Actor:      actor,
		Action:     models.AuditActionTransactionCreated,
		Resource:   "ledger_transaction",
		ResourceID: transactionID.String(),
		IPAddress:  ipAddress,
	}

	return s.CreateAuditLog(log)
}

// LogTransactionVoided records a voided ledger transaction
func (s *AuditService) LogTransactionVoided(actor, ipAddress string, transactionID uuid.UUID) error {
	log := &models.AuditLog{
		Actor:      actor,
		Action:     models.AuditActionTransactionVoided,
		Resource:   "ledger_transaction",
		ResourceID: transactionID.String(),
		IPAddress:  ipAddress,
	}

	return s.CreateAuditLog(log)
}

// LogFundCreated records a new fund
func (s *AuditService) LogFundCreated(actor, ipAddress string, fundID uuid.UUID) error {
	log := &models.AuditLog{
		Actor:      actor,
		Action:     models.AuditActionFundCreated,
		Resource:   "fund",
		ResourceID: fundID.String(),
		IPAddress:  ipAddress,
	}

	return s.CreateAuditLog(log)
}
