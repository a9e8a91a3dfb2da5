package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"parish-ledger/internal/dto"
	apierrors "parish-ledger/internal/errors"
	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"
	"parish-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

// ReconciliationHandler handles statement import and match review requests
type ReconciliationHandler struct {
	reconciliationService services.ReconciliationServiceInterface
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliationService services.ReconciliationServiceInterface) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// ImportStatement accepts a bank statement CSV as a multipart upload and
// returns the resulting reconciliation session
func (h *ReconciliationHandler) ImportStatement(c echo.Context) error {
	fileHeader, err := c.FormFile("statement")
	if err != nil {
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("A statement file is required"))
	}

	source := c.FormValue("source")
	if source == "" {
		source = fileHeader.Filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	session, err := h.reconciliationService.ImportStatement(source, file, getActor(c), getClientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStatementEmpty):
			return SendError(c, apierrors.StatementEmptyFile)
		case errors.Is(err, services.ErrStatementMissingColumns):
			return SendError(c, apierrors.StatementMissingColumns, apierrors.WithDetails(err.Error()))
		case errors.Is(err, services.ErrStatementTooLarge):
			return SendError(c, apierrors.StatementTooManyRows, apierrors.WithDetails(err.Error()))
		}

		var rowErrs *multierror.Error
		if errors.As(err, &rowErrs) {
			return SendError(c, apierrors.StatementMalformedRows, apierrors.WithDetails(rowErrs.Error()))
		}

		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ImportStatementResponse{
		Session: session,
		Message: "Statement imported successfully",
	})
}

// ListSessions retrieves reconciliation sessions, newest first
func (h *ReconciliationHandler) ListSessions(c echo.Context) error {
	offset, limit := getPagination(c)

	sessions, total, err := h.reconciliationService.ListSessions(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SessionListResponse{
		Sessions: sessions,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// GetSession retrieves a reconciliation session with its items
func (h *ReconciliationHandler) GetSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid session ID"))
	}

	session, err := h.reconciliationService.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrReconciliationSessionNotFound) {
			return SendError(c, apierrors.ReconciliationSessionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// GetSessionSummary returns the tier and review breakdown of a session
func (h *ReconciliationHandler) GetSessionSummary(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid session ID"))
	}

	session, err := h.reconciliationService.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrReconciliationSessionNotFound) {
			return SendError(c, apierrors.ReconciliationSessionNotFound)
		}
		return SendSystemError(c, err)
	}

	summary := dto.SessionSummaryResponse{
		SessionID: session.ID.String(),
		RowCount:  session.RowCount,
		Exact:     session.ExactCount,
		Strong:    session.StrongCount,
		Fuzzy:     session.FuzzyCount,
		Unmatched: session.NoneCount,
		Pending:   session.PendingReviewCount(),
	}
	for _, item := range session.Items {
		switch item.ReviewStatus {
		case models.ReviewStatusConfirmed:
			summary.Confirmed++
		case models.ReviewStatusRejected:
			summary.Rejected++
		}
	}

	return c.JSON(http.StatusOK, summary)
}

// ConfirmMatch accepts a proposed match for review
func (h *ReconciliationHandler) ConfirmMatch(c echo.Context) error {
	return h.review(c, h.reconciliationService.ConfirmMatch, "Match confirmed")
}

// RejectMatch refuses a proposed match for review
func (h *ReconciliationHandler) RejectMatch(c echo.Context) error {
	return h.review(c, h.reconciliationService.RejectMatch, "Match rejected")
}

type reviewFunc func(sessionID uuid.UUID, rowIndex int, actor, ipAddress string) (*models.ReconciliationItem, error)

func (h *ReconciliationHandler) review(c echo.Context, fn reviewFunc, message string) error {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid session ID"))
	}

	rowIndex, err := strconv.Atoi(c.Param("rowIndex"))
	if err != nil || rowIndex < 0 {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid row index"))
	}

	item, err := fn(sessionID, rowIndex, getActor(c), getClientIP(c))
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrReconciliationSessionNotFound):
			return SendError(c, apierrors.ReconciliationSessionNotFound)
		case errors.Is(err, services.ErrRowIndexOutOfRange):
			return SendError(c, apierrors.ReconciliationItemNotFound)
		case errors.Is(err, models.ErrItemHasNoMatch):
			return SendError(c, apierrors.ReconciliationNoMatch)
		case errors.Is(err, models.ErrItemAlreadyReviewed):
			return SendError(c, apierrors.ReconciliationAlreadyReviewed)
		case errors.Is(err, services.ErrMatchedTransactionGone):
			return SendError(c, apierrors.TransactionNotFound, apierrors.WithDetails("Matched transaction no longer exists"))
		case errors.Is(err, models.ErrInvalidStatusTransition):
			return SendError(c, apierrors.TransactionAlreadyReconciled)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.ReviewMatchResponse{
		Item:    item,
		Message: message,
	})
}
