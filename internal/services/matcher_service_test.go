package services

import (
	"testing"
	"time"

	"parish-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MatcherServiceTestSuite struct {
	suite.Suite
	matcher TransactionMatcherInterface
}

func TestMatcherServiceSuite(t *testing.T) {
	suite.Run(t, new(MatcherServiceTestSuite))
}

func (s *MatcherServiceTestSuite) SetupTest() {
	s.matcher = NewTransactionMatcher()
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *MatcherServiceTestSuite) ledgerTxn(day int, amount int64, description, reference string) models.LedgerTransaction {
	return models.LedgerTransaction{
		ID:          uuid.New(),
		FundID:      uuid.New(),
		EntryType:   models.EntryTypeIncome,
		Amount:      decimal.NewFromInt(amount),
		Description: description,
		Reference:   reference,
		EntryDate:   date(2025, time.March, day),
		Status:      models.TransactionStatusRecorded,
	}
}

func bankRow(day int, amount int64, description, reference string) models.BankRow {
	return models.BankRow{
		Date:        date(2025, time.March, day),
		Amount:      decimal.NewFromInt(amount),
		Description: description,
		Reference:   reference,
	}
}

// --- Worked examples ---

func (s *MatcherServiceTestSuite) TestExactMatch_ReferenceSubstringCaseInsensitive() {
	txn := s.ledgerTxn(10, 15000, "Transferencia Juan Perez arriendo", "op12345")
	rows := []models.BankRow{bankRow(10, -15000, "TRANSFERENCIA JUAN PEREZ", "OP12345")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{txn})

	s.Require().Len(results, 1)
	s.Equal(models.MatchTypeExact, results[0].MatchType)
	s.Equal(models.ConfidenceExact, results[0].Confidence)
	s.Require().NotNil(results[0].MatchedTransactionID)
	s.Equal(txn.ID, *results[0].MatchedTransactionID)
}

func (s *MatcherServiceTestSuite) TestStrongMatch_NoReferenceWithinThreeDays() {
	txn := s.ledgerTxn(12, 15000, "Transferencia Juan Perez arriendo", "")
	rows := []models.BankRow{bankRow(10, -15000, "TRANSFERENCIA JUAN PEREZ", "OP12345")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{txn})

	s.Require().Len(results, 1)
	s.Equal(models.MatchTypeStrong, results[0].MatchType)
	s.Equal(models.ConfidenceStrong, results[0].Confidence)
}

func (s *MatcherServiceTestSuite) TestAmountGate_OffByOneNeverMatches() {
	txn := s.ledgerTxn(10, 5001, "Donacion identica en todo lo demas", "REF1")
	rows := []models.BankRow{bankRow(10, 5000, "Donacion identica en todo lo demas", "REF1")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{txn})

	s.Require().Len(results, 1)
	s.Equal(models.MatchTypeNone, results[0].MatchType)
	s.Equal(models.ConfidenceNone, results[0].Confidence)
	s.Nil(results[0].MatchedTransactionID)
}

// --- Tier policy ---

func (s *MatcherServiceTestSuite) TestStrongTier_IgnoresDescriptions() {
	// 3 days away, zero word overlap: still strong
	txn := s.ledgertxnNoRef(13, 8000, "completely unrelated words here")
	rows := []models.BankRow{bankRow(10, -8000, "pago proveedor sonido", "")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{txn})

	s.Equal(models.MatchTypeStrong, results[0].MatchType)
}

func (s *MatcherServiceTestSuite) ledgertxnNoRef(day int, amount int64, description string) models.LedgerTransaction {
	return s.ledgerTxn(day, amount, description, "")
}

func (s *MatcherServiceTestSuite) TestFuzzyTier_OutsideStrongWindowWithSimilarDescription() {
	// 5 days away, high word overlap
	txn := s.ledgertxnNoRef(15, 8000, "Pago proveedor sonido iglesia")
	rows := []models.BankRow{bankRow(10, -8000, "PAGO PROVEEDOR SONIDO", "")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{txn})

	s.Equal(models.MatchTypeFuzzy, results[0].MatchType)
	s.Equal(models.ConfidenceFuzzy, results[0].Confidence)
}

func (s *MatcherServiceTestSuite) TestFuzzyTier_LowSimilarityIsNone() {
	// 5 days away, descriptions share nothing
	txn := s.ledgertxnNoRef(15, 8000, "arriendo salon parroquial")
	rows := []models.BankRow{bankRow(10, -8000, "compra equipos cocina", "")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{txn})

	s.Equal(models.MatchTypeNone, results[0].MatchType)
}

func (s *MatcherServiceTestSuite) TestOutsideFuzzyWindow_IsNone() {
	// 8 days away, identical description
	txn := s.ledgertxnNoRef(18, 8000, "pago proveedor sonido")
	rows := []models.BankRow{bankRow(10, -8000, "pago proveedor sonido", "")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{txn})

	s.Equal(models.MatchTypeNone, results[0].MatchType)
}

func (s *MatcherServiceTestSuite) TestWindowBoundaries_Inclusive() {
	strongEdge := s.ledgertxnNoRef(13, 100, "x y z")
	results := s.matcher.Match(
		[]models.BankRow{bankRow(10, 100, "other words entirely", "")},
		[]models.LedgerTransaction{strongEdge},
	)
	s.Equal(models.MatchTypeStrong, results[0].MatchType, "3 days is inside the strong window")

	fuzzyEdge := s.ledgertxnNoRef(17, 100, "ofrenda misionera marzo")
	results = s.matcher.Match(
		[]models.BankRow{bankRow(10, 100, "OFRENDA MISIONERA MARZO", "")},
		[]models.LedgerTransaction{fuzzyEdge},
	)
	s.Equal(models.MatchTypeFuzzy, results[0].MatchType, "7 days is inside the fuzzy window")
}

func (s *MatcherServiceTestSuite) TestExactBeatsCloserStrongCandidate() {
	// Same-day candidate without reference vs same-day candidate with
	// matching reference: the reference wins regardless of scan order.
	noRef := s.ledgertxnNoRef(10, 15000, "Transferencia Juan Perez")
	withRef := s.ledgerTxn(10, 15000, "Transferencia Juan Perez arriendo", "OP12345")

	rows := []models.BankRow{bankRow(10, -15000, "TRANSFERENCIA JUAN PEREZ", "op12345")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{noRef, withRef})

	s.Equal(models.MatchTypeExact, results[0].MatchType)
	s.Equal(withRef.ID, *results[0].MatchedTransactionID)
}

func (s *MatcherServiceTestSuite) TestFirstCandidateWinsWithinSameTier() {
	first := s.ledgertxnNoRef(11, 5000, "primera opcion")
	second := s.ledgertxnNoRef(10, 5000, "segunda opcion mas cercana")

	rows := []models.BankRow{bankRow(10, 5000, "deposito", "")}

	// Both are strong; the second is date-closer but the first was
	// encountered first and is only replaced by a strictly higher tier.
	results := s.matcher.Match(rows, []models.LedgerTransaction{first, second})

	s.Equal(models.MatchTypeStrong, results[0].MatchType)
	s.Equal(first.ID, *results[0].MatchedTransactionID)
}

func (s *MatcherServiceTestSuite) TestStrongReplacesEarlierFuzzy() {
	fuzzy := s.ledgertxnNoRef(15, 5000, "ofrenda especial construccion")
	strong := s.ledgertxnNoRef(12, 5000, "unrelated narration")

	rows := []models.BankRow{bankRow(10, 5000, "OFRENDA ESPECIAL CONSTRUCCION", "")}

	results := s.matcher.Match(rows, []models.LedgerTransaction{fuzzy, strong})

	s.Equal(models.MatchTypeStrong, results[0].MatchType)
	s.Equal(strong.ID, *results[0].MatchedTransactionID)
}

// --- Batch invariants ---

func (s *MatcherServiceTestSuite) TestOrderPreservation() {
	txns := []models.LedgerTransaction{
		s.ledgertxnNoRef(10, 100, "cien"),
		s.ledgertxnNoRef(10, 300, "trescientos"),
	}
	rows := []models.BankRow{
		bankRow(10, 100, "cien", ""),
		bankRow(10, 200, "doscientos", ""),
		bankRow(10, 300, "trescientos", ""),
	}

	results := s.matcher.Match(rows, txns)

	s.Require().Len(results, len(rows))
	for i, result := range results {
		s.Equal(i, result.BankRowIndex)
	}
	s.Equal(models.MatchTypeStrong, results[0].MatchType)
	s.Equal(models.MatchTypeNone, results[1].MatchType)
	s.Equal(models.MatchTypeStrong, results[2].MatchType)
}

func (s *MatcherServiceTestSuite) TestClaimExclusivity_FirstRowWins() {
	only := s.ledgertxnNoRef(10, 7500, "unica transaccion")

	rows := []models.BankRow{
		bankRow(10, -7500, "primer retiro", ""),
		bankRow(10, -7500, "segundo retiro", ""),
	}

	results := s.matcher.Match(rows, []models.LedgerTransaction{only})

	s.Equal(only.ID, *results[0].MatchedTransactionID)
	s.Equal(models.MatchTypeNone, results[1].MatchType)
	s.Nil(results[1].MatchedTransactionID)
}

func (s *MatcherServiceTestSuite) TestClaimExclusivity_SecondRowFallsBack() {
	a := s.ledgertxnNoRef(10, 7500, "transaccion a")
	b := s.ledgertxnNoRef(11, 7500, "transaccion b")

	rows := []models.BankRow{
		bankRow(10, -7500, "primer retiro", ""),
		bankRow(10, -7500, "segundo retiro", ""),
	}

	results := s.matcher.Match(rows, []models.LedgerTransaction{a, b})

	s.Equal(a.ID, *results[0].MatchedTransactionID)
	s.Require().NotNil(results[1].MatchedTransactionID)
	s.Equal(b.ID, *results[1].MatchedTransactionID)
}

func (s *MatcherServiceTestSuite) TestNoLedgerTransactionClaimedTwice() {
	txns := []models.LedgerTransaction{
		s.ledgertxnNoRef(10, 100, "a"),
		s.ledgertxnNoRef(11, 100, "b"),
		s.ledgertxnNoRef(12, 100, "c"),
	}
	rows := []models.BankRow{
		bankRow(10, 100, "w", ""),
		bankRow(10, 100, "x", ""),
		bankRow(10, 100, "y", ""),
		bankRow(10, 100, "z", ""),
	}

	results := s.matcher.Match(rows, txns)

	seen := make(map[uuid.UUID]bool)
	for _, result := range results {
		if result.MatchedTransactionID == nil {
			continue
		}
		s.False(seen[*result.MatchedTransactionID], "transaction claimed twice")
		seen[*result.MatchedTransactionID] = true
	}
	s.Len(seen, 3)
	s.Equal(models.MatchTypeNone, results[3].MatchType)
}

func (s *MatcherServiceTestSuite) TestIdempotence() {
	txns := []models.LedgerTransaction{
		s.ledgerTxn(10, 15000, "Transferencia Juan Perez arriendo", "op12345"),
		s.ledgertxnNoRef(12, 8000, "pago luz"),
	}
	rows := []models.BankRow{
		bankRow(10, -15000, "TRANSFERENCIA JUAN PEREZ", "OP12345"),
		bankRow(10, -8000, "PAGO ENEL LUZ", ""),
		bankRow(10, 123, "sin pareja", ""),
	}

	first := s.matcher.Match(rows, txns)
	second := s.matcher.Match(rows, txns)

	s.Equal(first, second)
}

func (s *MatcherServiceTestSuite) TestInputsNotMutated() {
	txns := []models.LedgerTransaction{s.ledgerTxn(10, 100, "diezmo", "R1")}
	rows := []models.BankRow{bankRow(10, -100, "DIEZMO", "r1")}

	txnsCopy := make([]models.LedgerTransaction, len(txns))
	copy(txnsCopy, txns)
	rowsCopy := make([]models.BankRow, len(rows))
	copy(rowsCopy, rows)

	s.matcher.Match(rows, txns)

	s.Equal(txnsCopy, txns)
	s.Equal(rowsCopy, rows)
}

func (s *MatcherServiceTestSuite) TestEmptyInputs() {
	s.Empty(s.matcher.Match(nil, []models.LedgerTransaction{s.ledgertxnNoRef(10, 1, "x")}))

	results := s.matcher.Match([]models.BankRow{bankRow(10, 1, "x", "")}, nil)
	s.Require().Len(results, 1)
	s.Equal(models.MatchTypeNone, results[0].MatchType)
}

// --- Reference matching ---

func (s *MatcherServiceTestSuite) TestReferenceMatching() {
	testCases := []struct {
		name      string
		bankRef   string
		ledgerRef string
		exact     bool
	}{
		{"identical", "OP12345", "OP12345", true},
		{"case insensitive", "op12345", "OP12345", true},
		{"whitespace trimmed", "  OP12345  ", "OP12345", true},
		{"bank contains ledger", "TRF-OP12345-2025", "OP12345", true},
		{"ledger contains bank", "OP12345", "TRF-OP12345-2025", true},
		{"blank ledger ref never matches", "OP12345", "", false},
		{"blank bank ref never matches", "", "OP12345", false},
		{"whitespace-only refs never match", "   ", "   ", false},
		{"disjoint refs", "OP11111", "OP22222", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			txn := s.ledgerTxn(10, 500, "narracion cualquiera", tc.ledgerRef)
			rows := []models.BankRow{bankRow(10, 500, "otra narracion", tc.bankRef)}

			results := s.matcher.Match(rows, []models.LedgerTransaction{txn})

			if tc.exact {
				s.Equal(models.MatchTypeExact, results[0].MatchType)
			} else {
				// Same-day amount match without reference still lands strong
				s.Equal(models.MatchTypeStrong, results[0].MatchType)
			}
		})
	}
}

// --- Description similarity ---

func (s *MatcherServiceTestSuite) TestDescriptionSimilarity() {
	testCases := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "pago proveedor sonido", "pago proveedor sonido", 1.0},
		{"case and punctuation ignored", "PAGO, proveedor. SONIDO!", "pago proveedor sonido", 1.0},
		{"short words dropped", "pago de la luz", "pago en su luz", 1.0},
		{"subset scores against larger set", "pago proveedor", "pago proveedor sonido iglesia", 0.5},
		{"disjoint", "arriendo salon", "compra equipos", 0.0},
		{"both empty", "", "", 0.0},
		{"one side only short words", "de la el", "pago luz", 0.0},
		{"accented letters kept", "transferencia según convenio", "transferencia según convenio", 1.0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.InDelta(tc.expected, descriptionSimilarity(tc.a, tc.b), 0.0001)
		})
	}
}

func (s *MatcherServiceTestSuite) TestDaysApart_IgnoresTimeOfDay() {
	late := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, time.March, 11, 0, 1, 0, 0, time.UTC)
	s.Equal(1, daysApart(late, early))
	s.Equal(0, daysApart(late, late))
	s.Equal(3, daysApart(date(2025, time.March, 10), date(2025, time.March, 13)))
}
