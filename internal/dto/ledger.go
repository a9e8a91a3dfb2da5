package dto

import (
	"parish-ledger/internal/models"
)

// Ledger Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a ledger transaction
type CreateTransactionRequest struct {
	FundID      string `json:"fund_id" validate:"required,uuid"`
	EntryType   string `json:"entry_type" validate:"required,entry_type"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	Description string `json:"description" validate:"required,min=1,max=255"`
	Reference   string `json:"reference" validate:"max=100"`
	EntryDate   string `json:"entry_date" validate:"required,iso_date"`
}

// TransactionFilterParams represents the query parameters accepted when listing transactions
type TransactionFilterParams struct {
	FundID    string `query:"fund_id" validate:"omitempty,uuid"`
	EntryType string `query:"entry_type" validate:"omitempty,entry_type"`
	Status    string `query:"status" validate:"omitempty,oneof=recorded reconciled voided"`
	Reference string `query:"reference" validate:"omitempty,max=100"`
	DateFrom  string `query:"date_from" validate:"omitempty,iso_date"`
	DateTo    string `query:"date_to" validate:"omitempty,iso_date"`
	Offset    int    `query:"offset" validate:"min=0"`
	Limit     int    `query:"limit" validate:"min=0,max=200"`
}

// Ledger Transaction Response DTOs

// CreateTransactionResponse represents the response after recording a transaction
type CreateTransactionResponse struct {
	Transaction *models.LedgerTransaction `json:"transaction"`
	Message     string                    `json:"message"`
}

// TransactionListResponse represents a paginated list of ledger transactions
type TransactionListResponse struct {
	Transactions []models.LedgerTransaction `json:"transactions"`
	Total        int64                      `json:"total"`
	Offset       int                        `json:"offset"`
	Limit        int                        `json:"limit"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
