package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"

	TransactionStatusRecorded   = "recorded"
	TransactionStatusReconciled = "reconciled"
	TransactionStatusVoided     = "voided"
)

var (
	ErrInvalidEntryType         = errors.New("invalid entry type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("transaction amount must be positive")
	ErrDescriptionRequired      = errors.New("transaction description is required")
	ErrEntryDateRequired        = errors.New("transaction entry date is required")
	ErrInvalidStatusTransition  = errors.New("invalid transaction status transition")
)

// LedgerTransaction is a transaction already recorded in the parish's
// own books. Amounts are stored unsigned; direction is carried by the
// entry type. EntryDate is day-granular: the time-of-day part is
// always midnight UTC.
type LedgerTransaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	FundID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"fund_id"`
	EntryType    string          `gorm:"type:varchar(20);not null" json:"entry_type"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Reference    string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	EntryDate    time.Time       `gorm:"not null;index" json:"entry_date"`
	Status       string          `gorm:"type:varchar(20);not null;default:'recorded'" json:"status"`
	ReconciledAt *time.Time      `json:"reconciled_at,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Fund Fund `gorm:"foreignKey:FundID" json:"-"`
}

// BeforeCreate hook for LedgerTransaction
func (t *LedgerTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Status == "" {
		t.Status = TransactionStatusRecorded
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	t.EntryDate = DayOf(t.EntryDate)

	return t.Validate()
}

// BeforeUpdate hook for LedgerTransaction
func (t *LedgerTransaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the ledger transaction fields
func (t *LedgerTransaction) Validate() error {
	if t.FundID == uuid.Nil {
		return errors.New("fund ID is required")
	}

	if !IsValidEntryType(t.EntryType) {
		return ErrInvalidEntryType
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return ErrDescriptionRequired
	}

	if t.EntryDate.IsZero() {
		return ErrEntryDateRequired
	}

	return nil
}

// IsReconciled returns true if the transaction has been matched against
// a bank record and confirmed
func (t *LedgerTransaction) IsReconciled() bool {
	return t.Status == TransactionStatusReconciled
}

// CanTransitionTo checks if a transaction can move to a new status
func (t *LedgerTransaction) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		TransactionStatusRecorded:   {TransactionStatusReconciled, TransactionStatusVoided},
		TransactionStatusReconciled: {TransactionStatusRecorded},
		TransactionStatusVoided:     {},
	}

	allowed, exists := validTransitions[t.Status]
	if !exists {
		return false
	}

	for _, status := range allowed {
		if status == newStatus {
			return true
		}
	}
	return false
}

// MarkReconciled moves the transaction to reconciled status
func (t *LedgerTransaction) MarkReconciled() error {
	if !t.CanTransitionTo(TransactionStatusReconciled) {
		return ErrInvalidStatusTransition
	}
	now := time.Now()
	t.Status = TransactionStatusReconciled
	t.ReconciledAt = &now
	return nil
}

// Unreconcile moves a reconciled transaction back to recorded status
func (t *LedgerTransaction) Unreconcile() error {
	if !t.CanTransitionTo(TransactionStatusRecorded) {
		return ErrInvalidStatusTransition
	}
	t.Status = TransactionStatusRecorded
	t.ReconciledAt = nil
	return nil
}

// Void marks the transaction as voided
func (t *LedgerTransaction) Void() error {
	if !t.CanTransitionTo(TransactionStatusVoided) {
		return ErrInvalidStatusTransition
	}
	t.Status = TransactionStatusVoided
	return nil
}

// TableName returns the table name for LedgerTransaction
func (t *LedgerTransaction) TableName() string {
	return "ledger_transactions"
}

// IsValidEntryType checks if the entry type is valid
func IsValidEntryType(entryType string) bool {
	switch entryType {
	case EntryTypeIncome, EntryTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusRecorded, TransactionStatusReconciled, TransactionStatusVoided:
		return true
	default:
		return false
	}
}

// DayOf truncates a timestamp to midnight UTC. Matching and storage
// work at day granularity.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
