package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parish-ledger/internal/config"
	"parish-ledger/internal/database"
	"parish-ledger/internal/handlers"
	"parish-ledger/internal/middleware"
	"parish-ledger/internal/repositories"
	"parish-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	fundRepo := repositories.NewFundRepository(db)
	ledgerRepo := repositories.NewLedgerTransactionRepository(db)
	reconRepo := repositories.NewReconciliationRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	auditService := services.NewAuditService(auditRepo)
	ledgerService := services.NewLedgerService(fundRepo, ledgerRepo, auditService, metrics, logger)
	reconciliationService := services.NewReconciliationService(
		services.NewStatementParser(),
		services.NewTransactionMatcher(),
		ledgerRepo,
		reconRepo,
		auditService,
		metrics,
		cfg.Reconciliation,
		logger,
	)

	if cfg.Reconciliation.SeedSampleData && cfg.IsDevelopment() {
		seeder := services.NewLedgerSeeder(fundRepo, ledgerRepo, logger)
		if err := seeder.Seed(5, 40); err != nil {
			logger.Warn("sample data seeding failed", "error", err)
		}
	}

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	fundHandler := handlers.NewFundHandler(ledgerService, auditService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	reconciliationHandler := handlers.NewReconciliationHandler(reconciliationService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/funds", fundHandler.CreateFund)
	api.GET("/funds", fundHandler.ListFunds)
	api.GET("/funds/:fundId", fundHandler.GetFund)
	api.GET("/funds/:fundId/activity", fundHandler.GetFundActivity)

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/:transactionId", transactionHandler.GetTransaction)
	api.POST("/transactions/:transactionId/void", transactionHandler.VoidTransaction)

	api.POST("/statements/import", reconciliationHandler.ImportStatement)
	api.GET("/reconciliation/sessions", reconciliationHandler.ListSessions)
	api.GET("/reconciliation/sessions/:sessionId", reconciliationHandler.GetSession)
	api.GET("/reconciliation/sessions/:sessionId/summary", reconciliationHandler.GetSessionSummary)
	api.POST("/reconciliation/sessions/:sessionId/items/:rowIndex/confirm", reconciliationHandler.ConfirmMatch)
	api.POST("/reconciliation/sessions/:sessionId/items/:rowIndex/reject", reconciliationHandler.RejectMatch)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
