package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ImportStatusProcessed = "processed"
	ImportStatusFailed    = "failed"
)

var (
	ErrImportSourceRequired = errors.New("statement source is required")
	ErrImportNoRows         = errors.New("statement contains no rows")
)

// StatementImport records one uploaded bank statement batch: where it
// came from, how many rows it carried and the date span those rows
// cover. The rows themselves are ephemeral; only the reconciliation
// session items derived from them are kept.
type StatementImport struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Source      string    `gorm:"type:varchar(120);not null" json:"source"`
	RowCount    int       `gorm:"not null" json:"row_count"`
	PeriodStart time.Time `gorm:"not null" json:"period_start"`
	PeriodEnd   time.Time `gorm:"not null" json:"period_end"`
	Status      string    `gorm:"type:varchar(20);not null;default:'processed'" json:"status"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for StatementImport
func (si *StatementImport) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	if si.Status == "" {
		si.Status = ImportStatusProcessed
	}
	if si.CreatedAt.IsZero() {
		si.CreatedAt = time.Now()
	}
	return si.Validate()
}

// Validate validates the statement import fields
func (si *StatementImport) Validate() error {
	if si.Source == "" {
		return ErrImportSourceRequired
	}
	if si.RowCount <= 0 {
		return ErrImportNoRows
	}
	return nil
}

// TableName returns the table name for StatementImport
func (si *StatementImport) TableName() string {
	return "statement_imports"
}
