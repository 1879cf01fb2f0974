package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ledger-bot/internal/config"
	"ledger-bot/internal/database"
	"ledger-bot/internal/events"
	"ledger-bot/internal/handlers"
	"ledger-bot/internal/middleware"
	"ledger-bot/internal/repositories"
	"ledger-bot/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// A missing .env is fine outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	publisher := events.NewNoopPublisher()
	if cfg.Events.Enabled {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, logger)
		if err != nil {
			logger.Error("Failed to connect to event broker", "error", err)
			os.Exit(1)
		}
		publisher = amqpPublisher
		logger.Info("Publishing ledger events", "exchange", cfg.Events.Exchange)
	}
	defer publisher.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	accountRepo := repositories.NewAccountRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	aliasRepo := repositories.NewAliasRepository(db.DB)
	entryRepo := repositories.NewEntryRepository(db.DB)
	transferRepo := repositories.NewTransferRepository(db.DB)
	ledgerRepo := repositories.NewLedgerRepository(db.DB)

	// Services
	auditLogger := services.NewAuditLogger(logger)
	metrics := services.NewPrometheusMetrics(reg)
	tokenService := services.NewTokenService(&cfg.JWT)
	userService := services.NewUserService(userRepo, ledgerRepo, auditLogger, logger)
	resolver := services.NewAliasResolver(aliasRepo, accountRepo, categoryRepo, logger)
	ledgerService := services.NewLedgerService(ledgerRepo, accountRepo, categoryRepo, entryRepo, transferRepo,
		publisher, auditLogger, metrics, logger)
	commandService := services.NewCommandService(resolver, ledgerService, metrics, logger)
	accountService := services.NewAccountService(accountRepo, ledgerRepo, auditLogger, logger)
	categoryService := services.NewCategoryService(categoryRepo, ledgerRepo, logger)
	aliasService := services.NewAliasService(aliasRepo, resolver, logger)
	historyService := services.NewHistoryService(entryRepo, transferRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(reg, logger)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())

	e.GET("/health", handlers.NewHealthCheckHandler(db.DB).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	if !cfg.IsProduction() && cfg.JWT.PrivateKey != nil {
		e.POST("/dev/token", handlers.NewDevHandler(tokenService).IssueToken)
		logger.Warn("Development token endpoint enabled")
	}

	commandHandler := handlers.NewCommandHandler(commandService, ledgerService)
	accountHandler := handlers.NewAccountHandler(accountService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	aliasHandler := handlers.NewAliasHandler(aliasService)
	historyHandler := handlers.NewHistoryHandler(historyService, ledgerService)
	userHandler := handlers.NewUserHandler(userService)

	api := e.Group("/api/v1",
		middleware.RequireAuth(tokenService, userService),
		middleware.RateLimiter(cfg.RateLimit),
	)

	api.POST("/commands", commandHandler.HandleCommand)
	api.POST("/drafts/commit", commandHandler.CommitDraft)

	api.GET("/accounts", accountHandler.ListAccounts)
	api.POST("/accounts", accountHandler.CreateAccount)
	api.PATCH("/accounts/:id", accountHandler.RenameAccount)
	api.DELETE("/accounts/:id", accountHandler.DeleteAccount)

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.PATCH("/categories/:id", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)
	api.POST("/categories/:id/subcategories", categoryHandler.CreateSubcategory)
	api.DELETE("/subcategories/:id", categoryHandler.DeleteSubcategory)

	api.GET("/aliases", aliasHandler.ListAliases)
	api.POST("/aliases", aliasHandler.CreateAlias)
	api.DELETE("/aliases/:id", aliasHandler.DeleteAlias)

	api.GET("/entries", historyHandler.ListEntries)
	api.DELETE("/entries/:id", historyHandler.DeleteEntry)
	api.GET("/transfers", historyHandler.ListTransfers)
	api.DELETE("/transfers/:id", historyHandler.DeleteTransfer)

	api.GET("/me", userHandler.GetMe)
	api.DELETE("/me", userHandler.PurgeMe)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting ledger-bot server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped gracefully")
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
