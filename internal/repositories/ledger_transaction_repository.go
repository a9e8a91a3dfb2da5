package repositories

import (
	"errors"
	"fmt"
	"time"

	"parish-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLedgerTransactionNotFound = errors.New("ledger transaction not found")
)

// ledgerTransactionRepository implements LedgerTransactionRepositoryInterface
type ledgerTransactionRepository struct {
	db *gorm.DB
}

// NewLedgerTransactionRepository creates a new ledger transaction repository
func NewLedgerTransactionRepository(db *gorm.DB) LedgerTransactionRepositoryInterface {
	return &ledgerTransactionRepository{
		db: db,
	}
}

// Create creates a new ledger transaction
func (r *ledgerTransactionRepository) Create(transaction *models.LedgerTransaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create ledger transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple ledger transactions in a single database transaction
func (r *ledgerTransactionRepository) CreateBatch(transactions []models.LedgerTransaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch ledger transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a ledger transaction by ID
func (r *ledgerTransactionRepository) GetByID(id uuid.UUID) (*models.LedgerTransaction, error) {
	transaction := &models.LedgerTransaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get ledger transaction: %w", err)
	}
	return transaction, nil
}

// GetWithFilters retrieves ledger transactions matching the given filters with pagination
func (r *ledgerTransactionRepository) GetWithFilters(filters models.TransactionFilters, offset, limit int) ([]models.LedgerTransaction, int64, error) {
	var transactions []models.LedgerTransaction
	var total int64

	query := r.db.Model(&models.LedgerTransaction{})

	if filters.FundID != nil {
		query = query.Where("fund_id = ?", *filters.FundID)
	}
	if filters.EntryType != "" {
		query = query.Where("entry_type = ?", filters.EntryType)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Reference != "" {
		query = query.Where("reference = ?", filters.Reference)
	}
	if filters.HasDateRange() {
		query = query.Where("entry_date BETWEEN ? AND ?", *filters.StartDate, *filters.EndDate)
	} else if filters.StartDate != nil {
		query = query.Where("entry_date >= ?", *filters.StartDate)
	} else if filters.EndDate != nil {
		query = query.Where("entry_date <= ?", *filters.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger transactions: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("entry_date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get ledger transactions: %w", err)
	}

	return transactions, total, nil
}

// GetUnreconciledByDateRange retrieves recorded transactions whose entry date falls
// within the given range, ordered by entry date then creation time
func (r *ledgerTransactionRepository) GetUnreconciledByDateRange(startDate, endDate time.Time) ([]models.LedgerTransaction, error) {
	var transactions []models.LedgerTransaction
	if err := r.db.Where("status = ? AND entry_date BETWEEN ? AND ?",
		models.TransactionStatusRecorded, startDate, endDate).
		Order("entry_date ASC, created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get unreconciled transactions: %w", err)
	}
	return transactions, nil
}

// Update updates an existing ledger transaction
func (r *ledgerTransactionRepository) Update(transaction *models.LedgerTransaction) error {
	result := r.db.Save(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update ledger transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLedgerTransactionNotFound
	}
	return nil
}

// CountByStatus counts ledger transactions with the given status
func (r *ledgerTransactionRepository) CountByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.LedgerTransaction{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ledger transactions by status: %w", err)
	}
	return count, nil
}
