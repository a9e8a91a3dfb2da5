package services

import (
	"math"
	"strings"
	"time"
	"unicode"

	"parish-ledger/internal/models"

	"github.com/google/uuid"
)

const (
	// Date windows are inclusive, in whole days.
	strongDateWindowDays = 3
	fuzzyDateWindowDays  = 7

	// Minimum word-overlap similarity for a fuzzy description match.
	fuzzySimilarityFloor = 0.5

	// Words this short are connector noise and are dropped before
	// computing description overlap.
	minSimilarityWordLen = 3
)

type matcherService struct{}

// NewTransactionMatcher creates the bank-row to ledger-transaction matcher
func NewTransactionMatcher() TransactionMatcherInterface {
	return &matcherService{}
}

// Match pairs each bank row with at most one not-yet-claimed ledger
// transaction, ranked by a fixed confidence hierarchy:
//
//	exact  0.95  same day and matching reference
//	strong 0.85  within 3 days
//	fuzzy  0.70  within 7 days and description overlap >= 0.5
//	none   0.00  no candidate qualified
//
// Every tier requires the absolute bank amount to equal the ledger
// amount exactly. Results come back one per row, in input order.
// Earlier rows have first claim on a transaction, so the pairing is
// 1-to-1 across the whole batch. Pure function: neither input is
// mutated and no state survives the call.
func (m *matcherService) Match(bankRows []models.BankRow, existing []models.LedgerTransaction) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(bankRows))
	used := make(map[uuid.UUID]bool, len(bankRows))

	for i := range bankRows {
		row := &bankRows[i]
		best := models.NoMatch(i)

		for j := range existing {
			txn := &existing[j]
			if used[txn.ID] {
				continue
			}

			// Amount gate: banks sign their rows, the ledger does not.
			if !row.Amount.Abs().Equal(txn.Amount) {
				continue
			}

			dayDiff := daysApart(row.Date, txn.EntryDate)

			if dayDiff == 0 && referencesMatch(row.Reference, txn.Reference) {
				best = matchAt(i, txn.ID, models.ConfidenceExact, models.MatchTypeExact)
				// Nothing can outrank an exact match.
				break
			}

			confidence, matchType := candidateTier(dayDiff, row.Description, txn.Description)
			if confidence > best.Confidence {
				best = matchAt(i, txn.ID, confidence, matchType)
			}
		}

		if best.IsMatch() {
			used[*best.MatchedTransactionID] = true
		}
		results = append(results, best)
	}

	return results
}

// candidateTier returns the highest non-exact tier a candidate
// qualifies for. Strong and fuzzy are evaluated independently; a
// candidate inside the strong window never needs the fuzzy check
// because strong already outranks it.
func candidateTier(dayDiff int, bankDescription, ledgerDescription string) (float64, string) {
	if dayDiff <= strongDateWindowDays {
		return models.ConfidenceStrong, models.MatchTypeStrong
	}
	if dayDiff <= fuzzyDateWindowDays &&
		descriptionSimilarity(bankDescription, ledgerDescription) >= fuzzySimilarityFloor {
		return models.ConfidenceFuzzy, models.MatchTypeFuzzy
	}
	return models.ConfidenceNone, models.MatchTypeNone
}

func matchAt(rowIndex int, txnID uuid.UUID, confidence float64, matchType string) models.MatchResult {
	id := txnID
	return models.MatchResult{
		BankRowIndex:         rowIndex,
		MatchedTransactionID: &id,
		Confidence:           confidence,
		MatchType:            matchType,
	}
}

// daysApart returns the absolute difference in whole days between two
// calendar dates. Time-of-day is ignored.
func daysApart(a, b time.Time) int {
	da := models.DayOf(a)
	db := models.DayOf(b)
	return int(math.Abs(da.Sub(db).Hours() / 24))
}

// referencesMatch reports whether two transaction references agree:
// case-insensitive, whitespace-trimmed equality or substring
// containment in either direction. Absent or blank references never
// match.
func referencesMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == "" || b == "" {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}

// descriptionSimilarity measures word overlap between two free-text
// narrations. Both sides are lowercased, stripped of everything that
// is not a letter, digit or space, and split into word sets with short
// words discarded. The score is the shared word count divided by the
// size of the larger set, so a short description contained in a longer
// one scores moderately instead of perfectly.
func descriptionSimilarity(a, b string) float64 {
	wordsA := significantWords(a)
	wordsB := significantWords(b)

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	shared := 0
	for word := range wordsA {
		if wordsB[word] {
			shared++
		}
	}

	larger := len(wordsA)
	if len(wordsB) > larger {
		larger = len(wordsB)
	}

	return float64(shared) / float64(larger)
}

func significantWords(description string) map[string]bool {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, description)

	words := make(map[string]bool)
	for _, word := range strings.Fields(normalized) {
		if len([]rune(word)) >= minSimilarityWordLen {
			words[word] = true
		}
	}
	return words
}
