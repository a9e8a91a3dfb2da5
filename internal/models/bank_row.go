package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MatchTypeExact  = "exact"
	MatchTypeStrong = "strong"
	MatchTypeFuzzy  = "fuzzy"
	MatchTypeNone   = "none"

	// Confidence tiers assigned to proposed pairings. The values are a
	// fixed hierarchy, not a continuous score.
	ConfidenceExact  = 0.95
	ConfidenceStrong = 0.85
	ConfidenceFuzzy  = 0.70
	ConfidenceNone   = 0.0
)

// BankRow is one line item parsed from an imported bank statement, not
// yet reconciled against the ledger. It is never persisted as-is; the
// parser produces it and the matcher consumes it. Amount keeps the
// bank's sign convention (withdrawals negative), which may differ from
// the ledger's unsigned convention.
type BankRow struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Reference   string          `json:"reference,omitempty"`
}

// MatchResult is the matcher's verdict for a single bank row. Results
// only live for the duration of a reconciliation review session; the
// caller decides what to persist.
type MatchResult struct {
	BankRowIndex         int        `json:"bank_row_index"`
	MatchedTransactionID *uuid.UUID `json:"matched_transaction_id,omitempty"`
	Confidence           float64    `json:"confidence"`
	MatchType            string     `json:"match_type"`
}

// IsMatch returns true if the result pairs the bank row with a ledger
// transaction at any tier
func (r *MatchResult) IsMatch() bool {
	return r.MatchType != MatchTypeNone && r.MatchedTransactionID != nil
}

// NoMatch returns the result for a bank row no candidate qualified for
func NoMatch(rowIndex int) MatchResult {
	return MatchResult{
		BankRowIndex:         rowIndex,
		MatchedTransactionID: nil,
		Confidence:           ConfidenceNone,
		MatchType:            MatchTypeNone,
	}
}

// IsValidMatchType checks if the match type is one of the known tiers
func IsValidMatchType(matchType string) bool {
	switch matchType {
	case MatchTypeExact, MatchTypeStrong, MatchTypeFuzzy, MatchTypeNone:
		return true
	default:
		return false
	}
}
