package main

import (
	"context"
	"net/http"

	"finchat/internal/config"
	"finchat/internal/database"
	"finchat/internal/handlers"
	"finchat/internal/llm"
	"finchat/internal/logger"
	"finchat/internal/messenger"
	"finchat/internal/middleware"
	"finchat/internal/repositories"
	"finchat/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	appLogger := logger.New()

	db, err := database.New(&cfg.Database)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to migrate database")
	}
	if err := db.CreateIndexes(); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to create indexes")
	}

	ctx := context.Background()
	geminiClient, err := llm.NewGeminiClient(ctx, cfg.Inference)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to create inference client")
	}

	metrics := services.NewPrometheusMetrics()

	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.MaxFailures = cfg.Inference.MaxFailures
	inference := services.NewGuardedInference(
		geminiClient,
		services.NewCircuitBreaker(breakerConfig),
		metrics,
	)

	transactionRepo := repositories.NewTransactionRepository(db.DB)

	pipeline := services.NewPipelineService(
		services.NewIntentService(inference, services.NewMemoryIntentCache(), metrics),
		services.NewExtractionService(inference),
		services.NewPlannerService(inference, nil),
		services.NewQueryService(transactionRepo),
		services.NewFormatterService(),
		transactionRepo,
		messenger.NewWhatsAppClient(cfg.WhatsApp),
		metrics,
		appLogger,
	)

	webhookHandler := handlers.NewWebhookHandler(pipeline, cfg.WhatsApp.VerifyToken, appLogger)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiter())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/webhook", webhookHandler.Verify)
	e.POST("/webhook", webhookHandler.Receive)

	e.POST("/transactions", transactionHandler.CreateTransaction)
	e.GET("/transactions", transactionHandler.ListTransactions)
	e.GET("/transactions/:id", transactionHandler.GetTransaction)
	e.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo)
		e.POST("/dev/seed", devHandler.SeedTransactions)
		appLogger.Warn().Msg("development endpoints enabled")
	}

	address := cfg.Server.Host + ":" + cfg.Server.Port
	appLogger.Info().Str("address", address).Str("env", cfg.Server.Environment).Msg("starting server")
	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		appLogger.Fatal().Err(err).Msg("server stopped")
	}
}
