package handlers

import (
	"net/http"

	"parish-ledger/internal/dto"
	"parish-ledger/internal/errors"
	"parish-ledger/internal/repositories"
	"parish-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FundHandler handles fund-related HTTP requests
type FundHandler struct {
	ledgerService services.LedgerServiceInterface
	auditService  services.AuditServiceInterface
}

// NewFundHandler creates a new fund handler
func NewFundHandler(ledgerService services.LedgerServiceInterface, auditService services.AuditServiceInterface) *FundHandler {
	return &FundHandler{
		ledgerService: ledgerService,
		auditService:  auditService,
	}
}

// CreateFund creates a new designated fund
func (h *FundHandler) CreateFund(c echo.Context) error {
	var req dto.CreateFundRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	fund, err := h.ledgerService.CreateFund(req.Code, req.Name, req.Description, getActor(c), getClientIP(c))
	if err != nil {
		if err == services.ErrFundCodeTaken {
			return SendError(c, errors.FundAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateFundResponse{
		Fund:    fund,
		Message: "Fund created successfully",
	})
}

// GetFund retrieves a fund by ID
func (h *FundHandler) GetFund(c echo.Context) error {
	fundID, err := uuid.Parse(c.Param("fundId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid fund ID"))
	}

	fund, err := h.ledgerService.GetFund(fundID)
	if err != nil {
		if err == repositories.ErrFundNotFound {
			return SendError(c, errors.FundNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, fund)
}

// ListFunds retrieves funds with pagination
func (h *FundHandler) ListFunds(c echo.Context) error {
	offset, limit := getPagination(c)

	funds, total, err := h.ledgerService.ListFunds(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FundListResponse{
		Funds:  funds,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}

// GetFundActivity retrieves the audit trail for a fund
func (h *FundHandler) GetFundActivity(c echo.Context) error {
	fundID, err := uuid.Parse(c.Param("fundId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid fund ID"))
	}

	offset, limit := getPagination(c)

	entries, total, err := h.auditService.GetResourceActivity("fund", fundID.String(), offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AuditLogListResponse{
		Entries: entries,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	})
}
