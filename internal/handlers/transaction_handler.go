package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"parish-ledger/internal/dto"
	"parish-ledger/internal/errors"
	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"
	"parish-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles ledger transaction HTTP requests
type TransactionHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledgerService services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransaction records a new ledger transaction
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	fundID, err := uuid.Parse(req.FundID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid fund ID"))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails("Invalid amount"))
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Entry date must be YYYY-MM-DD"))
	}

	txn := &models.LedgerTransaction{
		FundID:      fundID,
		EntryType:   strings.ToLower(req.EntryType),
		Amount:      amount,
		Description: req.Description,
		Reference:   req.Reference,
		EntryDate:   entryDate,
		Status:      models.TransactionStatusRecorded,
	}

	if err := txn.Validate(); err != nil {
		switch err {
		case models.ErrInvalidEntryType:
			return SendError(c, errors.TransactionInvalidType)
		case models.ErrInvalidAmount:
			return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
		default:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
	}

	created, err := h.ledgerService.CreateTransaction(txn, getActor(c), getClientIP(c))
	if err != nil {
		if err == repositories.ErrFundNotFound {
			return SendError(c, errors.FundNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: created,
		Message:     "Transaction recorded successfully",
	})
}

// GetTransaction retrieves a ledger transaction by ID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	txnID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	txn, err := h.ledgerService.GetTransaction(txnID)
	if err != nil {
		if err == repositories.ErrLedgerTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, txn)
}

// ListTransactions retrieves ledger transactions matching the query filters
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	offset, limit := getPagination(c)

	txns, total, err := h.ledgerService.ListTransactions(filters, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: txns,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	})
}

// VoidTransaction voids a recorded transaction
func (h *TransactionHandler) VoidTransaction(c echo.Context) error {
	txnID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	txn, err := h.ledgerService.VoidTransaction(txnID, getActor(c), getClientIP(c))
	if err != nil {
		switch err {
		case repositories.ErrLedgerTransactionNotFound:
			return SendError(c, errors.TransactionNotFound)
		case models.ErrInvalidStatusTransition:
			return SendError(c, errors.TransactionAlreadyReconciled, errors.WithDetails("Only recorded transactions can be voided"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.CreateTransactionResponse{
		Transaction: txn,
		Message:     "Transaction voided successfully",
	})
}

// parseTransactionFilters builds transaction filters from query parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	if raw := c.QueryParam("fund_id"); raw != "" {
		fundID, err := uuid.Parse(raw)
		if err != nil {
			return filters, fmt.Errorf("fund_id must be a valid UUID")
		}
		filters.FundID = &fundID
	}

	filters.EntryType = strings.ToLower(c.QueryParam("entry_type"))
	filters.Status = strings.ToLower(c.QueryParam("status"))
	filters.Reference = strings.TrimSpace(c.QueryParam("reference"))

	if raw := c.QueryParam("date_from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, fmt.Errorf("date_from must be YYYY-MM-DD")
		}
		filters.StartDate = &from
	}

	if raw := c.QueryParam("date_to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, fmt.Errorf("date_to must be YYYY-MM-DD")
		}
		filters.EndDate = &to
	}

	return filters, nil
}
