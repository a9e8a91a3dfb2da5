package dto

import (
	"parish-ledger/internal/models"
)

// Fund Request DTOs

// CreateFundRequest represents the request payload for creating a new fund
type CreateFundRequest struct {
	Code        string `json:"code" validate:"required,fund_code"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// Fund Response DTOs

// CreateFundResponse represents the response after creating a fund
type CreateFundResponse struct {
	Fund    *models.Fund `json:"fund"`
	Message string       `json:"message"`
}

// FundListResponse represents a paginated list of funds
type FundListResponse struct {
	Funds  []models.Fund `json:"funds"`
	Total  int64         `json:"total"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
}
