package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ReviewStatusPending   = "pending"
	ReviewStatusConfirmed = "confirmed"
	ReviewStatusRejected  = "rejected"
)

var (
	ErrInvalidReviewStatus    = errors.New("invalid review status")
	ErrItemAlreadyReviewed    = errors.New("reconciliation item has already been reviewed")
	ErrItemHasNoMatch         = errors.New("reconciliation item has no matched transaction")
	ErrInvalidMatchTypeValue  = errors.New("invalid match type")
	ErrSessionImportRequired  = errors.New("reconciliation session requires a statement import")
)

// ReconciliationSession groups the match results produced for one
// statement import so a reviewer can work through them. Tier counts are
// denormalized for listing without loading items.
type ReconciliationSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ImportID    uuid.UUID `gorm:"type:uuid;not null;index" json:"import_id"`
	RowCount    int       `gorm:"not null" json:"row_count"`
	ExactCount  int       `gorm:"not null;default:0" json:"exact_count"`
	StrongCount int       `gorm:"not null;default:0" json:"strong_count"`
	FuzzyCount  int       `gorm:"not null;default:0" json:"fuzzy_count"`
	NoneCount   int       `gorm:"not null;default:0" json:"none_count"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`

	// Associations
	Import StatementImport      `gorm:"foreignKey:ImportID" json:"-"`
	Items  []ReconciliationItem `gorm:"foreignKey:SessionID" json:"items,omitempty"`
}

// ReconciliationItem is one bank row together with the matcher's
// verdict for it and the reviewer's decision. The bank row fields are
// copied in because the uploaded statement itself is not retained.
type ReconciliationItem struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SessionID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"session_id"`
	RowIndex             int             `gorm:"not null" json:"row_index"`
	BankDate             time.Time       `gorm:"not null" json:"bank_date"`
	BankAmount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"bank_amount"`
	BankDescription      string          `gorm:"type:text" json:"bank_description"`
	BankReference        string          `gorm:"type:varchar(100)" json:"bank_reference,omitempty"`
	MatchedTransactionID *uuid.UUID      `gorm:"type:uuid;index" json:"matched_transaction_id,omitempty"`
	Confidence           float64         `gorm:"not null;default:0" json:"confidence"`
	MatchType            string          `gorm:"type:varchar(20);not null" json:"match_type"`
	ReviewStatus         string          `gorm:"type:varchar(20);not null;default:'pending'" json:"review_status"`
	ReviewedAt           *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt            time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	MatchedTransaction *LedgerTransaction `gorm:"foreignKey:MatchedTransactionID" json:"-"`
}

// BeforeCreate hook for ReconciliationSession
func (rs *ReconciliationSession) BeforeCreate(tx *gorm.DB) error {
	if rs.ID == uuid.Nil {
		rs.ID = uuid.New()
	}
	if rs.CreatedAt.IsZero() {
		rs.CreatedAt = time.Now()
	}
	if rs.ImportID == uuid.Nil {
		return ErrSessionImportRequired
	}
	return nil
}

// TableName returns the table name for ReconciliationSession
func (rs *ReconciliationSession) TableName() string {
	return "reconciliation_sessions"
}

// PendingReviewCount returns how many items still need a human decision
func (rs *ReconciliationSession) PendingReviewCount() int {
	count := 0
	for i := range rs.Items {
		if rs.Items[i].ReviewStatus == ReviewStatusPending && rs.Items[i].MatchedTransactionID != nil {
			count++
		}
	}
	return count
}

// BeforeCreate hook for ReconciliationItem
func (ri *ReconciliationItem) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	if ri.ReviewStatus == "" {
		ri.ReviewStatus = ReviewStatusPending
	}
	if ri.CreatedAt.IsZero() {
		ri.CreatedAt = time.Now()
	}
	return ri.Validate()
}

// Validate validates the reconciliation item fields
func (ri *ReconciliationItem) Validate() error {
	if !IsValidMatchType(ri.MatchType) {
		return ErrInvalidMatchTypeValue
	}
	if !IsValidReviewStatus(ri.ReviewStatus) {
		return ErrInvalidReviewStatus
	}
	return nil
}

// Confirm marks the item as accepted by the reviewer
func (ri *ReconciliationItem) Confirm() error {
	if ri.MatchedTransactionID == nil {
		return ErrItemHasNoMatch
	}
	if ri.ReviewStatus != ReviewStatusPending {
		return ErrItemAlreadyReviewed
	}
	now := time.Now()
	ri.ReviewStatus = ReviewStatusConfirmed
	ri.ReviewedAt = &now
	return nil
}

// Reject marks the item as refused by the reviewer
func (ri *ReconciliationItem) Reject() error {
	if ri.ReviewStatus != ReviewStatusPending {
		return ErrItemAlreadyReviewed
	}
	now := time.Now()
	ri.ReviewStatus = ReviewStatusRejected
	ri.ReviewedAt = &now
	return nil
}

// TableName returns the table name for ReconciliationItem
func (ri *ReconciliationItem) TableName() string {
	return "reconciliation_items"
}

// IsValidReviewStatus checks if the review status is valid
func IsValidReviewStatus(status string) bool {
	switch status {
	case ReviewStatusPending, ReviewStatusConfirmed, ReviewStatusRejected:
		return true
	default:
		return false
	}
}
