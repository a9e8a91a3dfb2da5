package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters narrows ledger transaction listings
type TransactionFilters struct {
	FundID    *uuid.UUID
	EntryType string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Reference string
}

// HasDateRange returns true when both ends of the date window are set
func (f *TransactionFilters) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}
