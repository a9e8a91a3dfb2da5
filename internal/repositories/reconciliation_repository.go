package repositories

import (
	"errors"
	"fmt"

	"parish-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReconciliationSessionNotFound = errors.New("reconciliation session not found")
	ErrReconciliationItemNotFound    = errors.New("reconciliation item not found")
)

// reconciliationRepository implements ReconciliationRepositoryInterface
type reconciliationRepository struct {
	db *gorm.DB
}

// NewReconciliationRepository creates a new reconciliation repository
func NewReconciliationRepository(db *gorm.DB) ReconciliationRepositoryInterface {
	return &reconciliationRepository{
		db: db,
	}
}

// CreateImport creates a new statement import record
func (r *reconciliationRepository) CreateImport(stmtImport *models.StatementImport) error {
	if err := r.db.Create(stmtImport).Error; err != nil {
		return fmt.Errorf("failed to create statement import: %w", err)
	}
	return nil
}

// CreateSession creates a reconciliation session together with its items
func (r *reconciliationRepository) CreateSession(session *models.ReconciliationSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("failed to create reconciliation session: %w", err)
		}
		return nil
	})
}

// GetSessionByID retrieves a reconciliation session with its items, ordered by bank row index
func (r *reconciliationRepository) GetSessionByID(id uuid.UUID) (*models.ReconciliationSession, error) {
	var session models.ReconciliationSession
	if err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("row_index ASC")
	}).First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReconciliationSessionNotFound
		}
		return nil, fmt.Errorf("failed to get reconciliation session: %w", err)
	}
	return &session, nil
}

// ListSessions retrieves reconciliation sessions with pagination, newest first
func (r *reconciliationRepository) ListSessions(offset, limit int) ([]models.ReconciliationSession, int64, error) {
	var sessions []models.ReconciliationSession
	var total int64

	if err := r.db.Model(&models.ReconciliationSession{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reconciliation sessions: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reconciliation sessions: %w", err)
	}

	return sessions, total, nil
}

// UpdateItem updates an existing reconciliation item
func (r *reconciliationRepository) UpdateItem(item *models.ReconciliationItem) error {
	result := r.db.Save(item)
	if result.Error != nil {
		return fmt.Errorf("failed to update reconciliation item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReconciliationItemNotFound
	}
	return nil
}

// CountPendingItems counts matched items still awaiting review across all sessions
func (r *reconciliationRepository) CountPendingItems() (int64, error) {
	var count int64
	if err := r.db.Model(&models.ReconciliationItem{}).
		Where("review_status = ? AND matched_transaction_id IS NOT NULL", models.ReviewStatusPending).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending reconciliation items: %w", err)
	}
	return count, nil
}
