package database

import (
	"fmt"
	"testing"
	"time"

	"parish-ledger/internal/config"
	"parish-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"reconciliation_items",
		"reconciliation_sessions",
		"statement_imports",
		"ledger_transactions",
		"audit_logs",
		"funds",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}

	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}

func CreateTestFund(t *testing.T, db *DB, code string) *models.Fund {
	t.Helper()

	fund := &models.Fund{
		Code:        code,
		Name:        "Fondo " + code,
		Description: "Test fund",
	}

	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test fund: %v", err)
	}

	return fund
}

func CreateTestLedgerTransaction(t *testing.T, db *DB, fundID uuid.UUID, amount string, entryDate time.Time, reference string) *models.LedgerTransaction {
	t.Helper()

	txn := &models.LedgerTransaction{
		FundID:      fundID,
		EntryType:   models.EntryTypeIncome,
		Amount:      decimal.RequireFromString(amount),
		Description: "Test ledger entry",
		Reference:   reference,
		EntryDate:   models.DayOf(entryDate),
		Status:      models.TransactionStatusRecorded,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test ledger transaction: %v", err)
	}

	return txn
}
