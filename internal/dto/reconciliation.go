package dto

import (
	"parish-ledger/internal/models"
)

// Reconciliation Response DTOs

// ImportStatementResponse represents the response after importing a bank statement
type ImportStatementResponse struct {
	Session *models.ReconciliationSession `json:"session"`
	Message string                        `json:"message"`
}

// SessionListResponse represents a paginated list of reconciliation sessions
type SessionListResponse struct {
	Sessions []models.ReconciliationSession `json:"sessions"`
	Total    int64                          `json:"total"`
	Offset   int                            `json:"offset"`
	Limit    int                            `json:"limit"`
}

// ReviewMatchResponse represents the response after confirming or rejecting a match
type ReviewMatchResponse struct {
	Item    *models.ReconciliationItem `json:"item"`
	Message string                     `json:"message"`
}

// SessionSummaryResponse represents the tier breakdown of a reconciliation session
type SessionSummaryResponse struct {
	SessionID string `json:"session_id"`
	RowCount  int    `json:"row_count"`
	Exact     int    `json:"exact"`
	Strong    int    `json:"strong"`
	Fuzzy     int    `json:"fuzzy"`
	Unmatched int    `json:"unmatched"`
	Pending   int    `json:"pending"`
	Confirmed int    `json:"confirmed"`
	Rejected  int    `json:"rejected"`
}
