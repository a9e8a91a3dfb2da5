package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"parish-ledger/internal/config"
	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrStatementTooLarge      = errors.New("statement exceeds the maximum row count")
	ErrRowIndexOutOfRange     = errors.New("no reconciliation item with that row index")
	ErrMatchedTransactionGone = errors.New("matched ledger transaction no longer exists")
)

// reconciliationService orchestrates statement imports and match review
type reconciliationService struct {
	parser       StatementParserInterface
	matcher      TransactionMatcherInterface
	ledgerRepo   repositories.LedgerTransactionRepositoryInterface
	reconRepo    repositories.ReconciliationRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	cfg          config.ReconciliationConfig
	logger       *slog.Logger
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	parser StatementParserInterface,
	matcher TransactionMatcherInterface,
	ledgerRepo repositories.LedgerTransactionRepositoryInterface,
	reconRepo repositories.ReconciliationRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	cfg config.ReconciliationConfig,
	logger *slog.Logger,
) ReconciliationServiceInterface {
	return &reconciliationService{
		parser:       parser,
		matcher:      matcher,
		ledgerRepo:   ledgerRepo,
		reconRepo:    reconRepo,
		auditService: auditService,
		metrics:      metrics,
		cfg:          cfg,
		logger:       logger,
	}
}

// ImportStatement parses an uploaded statement, matches its rows against
// unreconciled ledger transactions and stores the outcome as a review session
func (s *reconciliationService) ImportStatement(source string, statement io.Reader, actor, ipAddress string) (*models.ReconciliationSession, error) {
	start := time.Now()

	rows, err := s.parser.Parse(statement)
	if err != nil {
		s.logger.Warn("statement rejected by parser",
			"source", source,
			"error", err)
		return nil, err
	}

	if s.cfg.MaxStatementRows > 0 && len(rows) > s.cfg.MaxStatementRows {
		return nil, fmt.Errorf("%w: %d rows, limit %d", ErrStatementTooLarge, len(rows), s.cfg.MaxStatementRows)
	}

	periodStart, periodEnd := statementSpan(rows)

	// Candidate pool: recorded transactions inside the statement span widened
	// by the fuzzy window on each side. Anything further away can never match.
	windowStart := periodStart.AddDate(0, 0, -fuzzyDateWindowDays)
	windowEnd := periodEnd.AddDate(0, 0, fuzzyDateWindowDays)

	candidates, err := s.ledgerRepo.GetUnreconciledByDateRange(windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate transactions: %w", err)
	}

	results := s.matcher.Match(rows, candidates)

	stmtImport := &models.StatementImport{
		Source:      source,
		RowCount:    len(rows),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
	if err := s.reconRepo.CreateImport(stmtImport); err != nil {
		return nil, err
	}

	session := s.buildSession(stmtImport.ID, rows, results)

	if s.cfg.AutoConfirmExact {
		if err := s.autoConfirmExactItems(session); err != nil {
			return nil, err
		}
	}

	if err := s.reconRepo.CreateSession(session); err != nil {
		return nil, err
	}

	s.recordImportMetrics(session, time.Since(start))

	if err := s.auditService.LogStatementImported(actor, ipAddress, stmtImport.ID, len(rows)); err != nil {
		s.logger.Error("failed to audit statement import",
			"import_id", stmtImport.ID,
			"error", err)
	}

	s.logger.Info("statement imported",
		"source", source,
		"rows", session.RowCount,
		"exact", session.ExactCount,
		"strong", session.StrongCount,
		"fuzzy", session.FuzzyCount,
		"unmatched", session.NoneCount,
		"session_id", session.ID)

	return session, nil
}

// GetSession returns a reconciliation session with its items
func (s *reconciliationService) GetSession(sessionID uuid.UUID) (*models.ReconciliationSession, error) {
	return s.reconRepo.GetSessionByID(sessionID)
}

// ListSessions returns reconciliation sessions, newest first
func (s *reconciliationService) ListSessions(offset, limit int) ([]models.ReconciliationSession, int64, error) {
	return s.reconRepo.ListSessions(offset, limit)
}

// ConfirmMatch accepts a proposed match: the item is confirmed and the
// matched ledger transaction moves to reconciled
func (s *reconciliationService) ConfirmMatch(sessionID uuid.UUID, rowIndex int, actor, ipAddress string) (*models.ReconciliationItem, error) {
	item, err := s.findItem(sessionID, rowIndex)
	if err != nil {
		return nil, err
	}

	if err := item.Confirm(); err != nil {
		return nil, err
	}

	txn, err := s.ledgerRepo.GetByID(*item.MatchedTransactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrLedgerTransactionNotFound) {
			return nil, ErrMatchedTransactionGone
		}
		return nil, err
	}

	if err := txn.MarkReconciled(); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Update(txn); err != nil {
		return nil, err
	}

	if err := s.reconRepo.UpdateItem(item); err != nil {
		// The ledger row is already reconciled; put it back so it is
		// not stranded without a confirmed item pointing at it.
		if rbErr := txn.Unreconcile(); rbErr == nil {
			if updErr := s.ledgerRepo.Update(txn); updErr != nil {
				s.logger.Error("failed to revert transaction after item update failure",
					"transaction_id", txn.ID,
					"error", updErr)
			}
		}
		return nil, err
	}

	s.metrics.IncrementCounter("reconciliation.review", map[string]string{"decision": "confirmed"})
	s.updateReviewGauges()

	if err := s.auditService.LogMatchConfirmed(actor, ipAddress, sessionID, rowIndex, txn.ID); err != nil {
		s.logger.Error("failed to audit match confirmation",
			"session_id", sessionID,
			"row_index", rowIndex,
			"error", err)
	}

	s.logger.Info("match confirmed",
		"session_id", sessionID,
		"row_index", rowIndex,
		"transaction_id", txn.ID)

	return item, nil
}

// RejectMatch refuses a proposed match. The ledger transaction stays
// recorded; the transaction is not offered to other rows of this stored
// session, a fresh import is needed to re-match it.
func (s *reconciliationService) RejectMatch(sessionID uuid.UUID, rowIndex int, actor, ipAddress string) (*models.ReconciliationItem, error) {
	item, err := s.findItem(sessionID, rowIndex)
	if err != nil {
		return nil, err
	}

	if err := item.Reject(); err != nil {
		return nil, err
	}

	if err := s.reconRepo.UpdateItem(item); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("reconciliation.review", map[string]string{"decision": "rejected"})
	s.updateReviewGauges()

	if err := s.auditService.LogMatchRejected(actor, ipAddress, sessionID, rowIndex); err != nil {
		s.logger.Error("failed to audit match rejection",
			"session_id", sessionID,
			"row_index", rowIndex,
			"error", err)
	}

	s.logger.Info("match rejected",
		"session_id", sessionID,
		"row_index", rowIndex)

	return item, nil
}

func (s *reconciliationService) findItem(sessionID uuid.UUID, rowIndex int) (*models.ReconciliationItem, error) {
	session, err := s.reconRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}

	for i := range session.Items {
		if session.Items[i].RowIndex == rowIndex {
			return &session.Items[i], nil
		}
	}
	return nil, ErrRowIndexOutOfRange
}

func (s *reconciliationService) buildSession(importID uuid.UUID, rows []models.BankRow, results []models.MatchResult) *models.ReconciliationSession {
	session := &models.ReconciliationSession{
		ImportID: importID,
		RowCount: len(rows),
		Items:    make([]models.ReconciliationItem, 0, len(rows)),
	}

	for i, result := range results {
		row := rows[i]
		session.Items = append(session.Items, models.ReconciliationItem{
			RowIndex:             result.BankRowIndex,
			BankDate:             row.Date,
			BankAmount:           row.Amount,
			BankDescription:      row.Description,
			BankReference:        row.Reference,
			MatchedTransactionID: result.MatchedTransactionID,
			Confidence:           result.Confidence,
			MatchType:            result.MatchType,
			ReviewStatus:         models.ReviewStatusPending,
		})

		switch result.MatchType {
		case models.MatchTypeExact:
			session.ExactCount++
		case models.MatchTypeStrong:
			session.StrongCount++
		case models.MatchTypeFuzzy:
			session.FuzzyCount++
		default:
			session.NoneCount++
		}
	}

	return session
}

// autoConfirmExactItems settles exact-tier items without review. Runs
// before the session is persisted so the items are stored already
// confirmed.
func (s *reconciliationService) autoConfirmExactItems(session *models.ReconciliationSession) error {
	for i := range session.Items {
		item := &session.Items[i]
		if item.MatchType != models.MatchTypeExact {
			continue
		}

		txn, err := s.ledgerRepo.GetByID(*item.MatchedTransactionID)
		if err != nil {
			return err
		}
		if err := txn.MarkReconciled(); err != nil {
			return err
		}
		if err := s.ledgerRepo.Update(txn); err != nil {
			return err
		}
		if err := item.Confirm(); err != nil {
			return err
		}
	}
	return nil
}

func (s *reconciliationService) recordImportMetrics(session *models.ReconciliationSession, elapsed time.Duration) {
	for _, item := range session.Items {
		s.metrics.IncrementCounter("reconciliation.match", map[string]string{"tier": item.MatchType})
	}
	s.metrics.IncrementCounter("statement.import", map[string]string{"status": "processed"})
	s.metrics.RecordProcessingTime("statement.import", elapsed)
	s.updateReviewGauges()
}

func (s *reconciliationService) updateReviewGauges() {
	pending, err := s.reconRepo.CountPendingItems()
	if err != nil {
		s.logger.Error("failed to count pending reconciliation items", "error", err)
		return
	}
	s.metrics.RecordGauge("reconciliation.pending_reviews", float64(pending), nil)

	reconciled, err := s.ledgerRepo.CountByStatus(models.TransactionStatusReconciled)
	if err != nil {
		s.logger.Error("failed to count reconciled transactions", "error", err)
		return
	}
	s.metrics.RecordGauge("ledger.reconciled_transactions", float64(reconciled), nil)
}

// statementSpan returns the earliest and latest row dates, day-truncated
func statementSpan(rows []models.BankRow) (time.Time, time.Time) {
	earliest := models.DayOf(rows[0].Date)
	latest := earliest
	for _, row := range rows[1:] {
		day := models.DayOf(row.Date)
		if day.Before(earliest) {
			earliest = day
		}
		if day.After(latest) {
			latest = day
		}
	}
	return earliest, latest
}
