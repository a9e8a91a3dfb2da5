package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidFundCode = errors.New("fund code must be 2-20 uppercase letters, digits or dashes")
	ErrFundNameEmpty   = errors.New("fund name is required")
)

var fundCodePattern = regexp.MustCompile(`^[A-Z0-9-]{2,20}$`)

// Fund represents a designated pool of money in the parish books
// (general, missions, building, benevolence...). Every ledger
// transaction belongs to exactly one fund.
type Fund struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code        string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"type:varchar(120);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Fund
func (f *Fund) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	return f.Validate()
}

// BeforeUpdate hook for Fund
func (f *Fund) BeforeUpdate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	return f.Validate()
}

// Validate validates the fund fields
func (f *Fund) Validate() error {
	if !IsValidFundCode(f.Code) {
		return ErrInvalidFundCode
	}
	if f.Name == "" {
		return ErrFundNameEmpty
	}
	return nil
}

// TableName returns the table name for Fund
func (f *Fund) TableName() string {
	return "funds"
}

// IsValidFundCode checks if a fund code has the expected format
func IsValidFundCode(code string) bool {
	return fundCodePattern.MatchString(code)
}
