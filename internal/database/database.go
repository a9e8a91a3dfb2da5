package database

import (
	"fmt"
	"log"
	"time"

	"parish-ledger/internal/config"
	"parish-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Fund{},
		&models.LedgerTransaction{},
		&models.StatementImport{},
		&models.ReconciliationSession{},
		&models.ReconciliationItem{},
		&models.AuditLog{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_funds_code ON funds(code)",
		"CREATE INDEX IF NOT EXISTS idx_funds_active ON funds(active) WHERE active",
		// Ledger transaction indexes; the matcher window query filters on status and entry_date
		"CREATE INDEX IF NOT EXISTS idx_ledger_transactions_fund_id ON ledger_transactions(fund_id)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_transactions_status_entry_date ON ledger_transactions(status, entry_date)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_transactions_reference ON ledger_transactions(reference) WHERE reference <> ''",
		"CREATE INDEX IF NOT EXISTS idx_ledger_transactions_entry_date ON ledger_transactions(entry_date)",
		// Reconciliation indexes
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_sessions_import_id ON reconciliation_sessions(import_id)",
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_sessions_created_at ON reconciliation_sessions(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_items_session_id ON reconciliation_items(session_id)",
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_items_review_status ON reconciliation_items(review_status)",
		"CREATE INDEX IF NOT EXISTS idx_reconciliation_items_matched_transaction_id ON reconciliation_items(matched_transaction_id) WHERE matched_transaction_id IS NOT NULL",
		// Audit log indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON audit_logs(action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(&cfg.Database); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
