package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"parish-ledger/internal/models"
	"parish-ledger/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	seedAmountMin = 5000
	seedAmountMax = 250000
	seedSpanDays  = 30
	maxDriftDays  = 2
)

// ledgerSeeder populates the database with development sample data: funds,
// ledger entries and a bank batch that exercises every match tier.
type ledgerSeeder struct {
	fundRepo   repositories.FundRepositoryInterface
	ledgerRepo repositories.LedgerTransactionRepositoryInterface
	faker      *gofakeit.Faker
	rng        *rand.Rand
	logger     *slog.Logger
}

// NewLedgerSeeder creates a new sample data seeder
func NewLedgerSeeder(
	fundRepo repositories.FundRepositoryInterface,
	ledgerRepo repositories.LedgerTransactionRepositoryInterface,
	logger *slog.Logger,
) LedgerSeederInterface {
	seed := time.Now().UnixNano()
	return &ledgerSeeder{
		fundRepo:   fundRepo,
		ledgerRepo: ledgerRepo,
		faker:      gofakeit.New(seed),
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
	}
}

var seedFundNames = []struct {
	code string
	name string
}{
	{"GENERAL", "Fondo General"},
	{"MISIONES", "Fondo de Misiones"},
	{"CARIDAD", "Fondo de Caridad"},
	{"EDIFICIO", "Fondo de Construccion"},
	{"JOVENES", "Ministerio de Jovenes"},
}

var seedIncomeDescriptions = []string{
	"Diezmo %s",
	"Ofrenda dominical",
	"Donacion %s",
	"Ofrenda especial misiones",
}

var seedExpenseDescriptions = []string{
	"Pago electricidad",
	"Pago agua potable",
	"Compra materiales catequesis",
	"Mantencion templo",
	"Ayuda social %s",
}

// Seed creates funds and ledger entries spread over the last month
func (s *ledgerSeeder) Seed(fundCount, transactionsPerFund int) error {
	if fundCount > len(seedFundNames) {
		fundCount = len(seedFundNames)
	}

	for f := 0; f < fundCount; f++ {
		def := seedFundNames[f]

		existing, err := s.fundRepo.CheckCodeExists(def.code)
		if err != nil {
			return err
		}
		if existing {
			continue
		}

		fund := &models.Fund{
			Code: def.code,
			Name: def.name,
		}
		if err := s.fundRepo.Create(fund); err != nil {
			return fmt.Errorf("failed to seed fund %s: %w", def.code, err)
		}

		batch := make([]models.LedgerTransaction, 0, transactionsPerFund)
		for i := 0; i < transactionsPerFund; i++ {
			batch = append(batch, s.randomTransaction(fund.ID))
		}
		if err := s.ledgerRepo.CreateBatch(batch); err != nil {
			return fmt.Errorf("failed to seed transactions for fund %s: %w", def.code, err)
		}
	}

	s.logger.Info("sample data seeded",
		"funds", fundCount,
		"transactions_per_fund", transactionsPerFund)

	return nil
}

// GenerateBankBatch derives bank statement rows from ledger transactions
// with controlled perturbations, so that a seeded import hits every tier:
// same-day rows with references match exact, small date drifts match
// strong, larger drifts with shared description words match fuzzy.
func (s *ledgerSeeder) GenerateBankBatch(transactions []models.LedgerTransaction) []models.BankRow {
	rows := make([]models.BankRow, 0, len(transactions))

	for i, txn := range transactions {
		amount := txn.Amount
		if txn.EntryType == models.EntryTypeExpense {
			amount = amount.Neg()
		}

		row := models.BankRow{
			Date:        txn.EntryDate,
			Amount:      amount,
			Description: strings.ToUpper(txn.Description),
			Reference:   txn.Reference,
		}

		switch i % 3 {
		case 1:
			// Strong tier: drift the date, drop the reference
			drift := 1 + s.rng.Intn(maxDriftDays)
			row.Date = row.Date.AddDate(0, 0, drift)
			row.Reference = ""
		case 2:
			// Fuzzy tier: push past the strong window, keep wording close
			row.Date = row.Date.AddDate(0, 0, strongDateWindowDays+1+s.rng.Intn(maxDriftDays))
			row.Reference = ""
			row.Description = "TRANSFERENCIA " + strings.ToUpper(txn.Description)
		default:
			// Exact tier: same day, reference kept with casing noise
			row.Reference = strings.ToLower(row.Reference)
		}

		rows = append(rows, row)
	}

	return rows
}

func (s *ledgerSeeder) randomTransaction(fundID uuid.UUID) models.LedgerTransaction {
	entryType := models.EntryTypeIncome
	description := seedIncomeDescriptions[s.rng.Intn(len(seedIncomeDescriptions))]
	if s.rng.Intn(100) < 40 {
		entryType = models.EntryTypeExpense
		description = seedExpenseDescriptions[s.rng.Intn(len(seedExpenseDescriptions))]
	}
	if strings.Contains(description, "%s") {
		description = fmt.Sprintf(description, s.faker.Name())
	}

	amount := decimal.NewFromInt(int64(seedAmountMin + s.rng.Intn(seedAmountMax-seedAmountMin)))
	entryDate := models.DayOf(time.Now().AddDate(0, 0, -s.rng.Intn(seedSpanDays)))

	reference := ""
	if s.rng.Intn(100) < 60 {
		reference = fmt.Sprintf("OP%05d", s.rng.Intn(100000))
	}

	return models.LedgerTransaction{
		FundID:      fundID,
		EntryType:   entryType,
		Amount:      amount,
		Description: description,
		Reference:   reference,
		EntryDate:   entryDate,
	}
}
