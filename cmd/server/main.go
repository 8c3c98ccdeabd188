package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/gobalance/internal/adapter/http"
	"github.com/iho/gobalance/internal/adapter/http/handler"
	"github.com/iho/gobalance/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/gobalance/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gobalance/internal/adapter/repository/redis"
	"github.com/iho/gobalance/internal/infrastructure/config"
	"github.com/iho/gobalance/internal/infrastructure/logger"
	"github.com/iho/gobalance/internal/infrastructure/metrics"
	"github.com/iho/gobalance/internal/infrastructure/postgres"
	"github.com/iho/gobalance/internal/infrastructure/redis"
	"github.com/iho/gobalance/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	logg := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = logg

	// Register metrics
	m := metrics.New()

	ctx := context.Background()

	// Apply pending migrations when a migrations path is configured
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Load accounting reference data
	chartRepo := postgresRepo.NewChartRepository(pool, cfg.AccountsChartSeparator)
	refData, err := loadReferenceData(ctx, chartRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load reference data")
	}

	// Initialize repositories
	balanceRepo := postgresRepo.NewBalanceRepository(pool, refData, m)
	rateRepo := postgresRepo.NewExchangeRateRepository(pool, m)
	reportCache := redisRepo.NewCache(redisClient, m)
	idGen := postgresRepo.NewULIDGenerator()

	// Initialize use cases
	balanceUC := usecase.NewTrialBalanceUseCase(balanceRepo, rateRepo, refData,
		reportCache, cfg.ReportCacheTTL, cfg.BaseCurrencyID, idGen, m)

	// Initialize handlers
	trialBalanceHandler := handler.NewTrialBalanceHandler(balanceUC, refData.Subledgers)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TrialBalanceHandler: trialBalanceHandler,
		HealthHandler:       healthHandler,
		Logger:              logg,
		Metrics:             m,
		RateLimiter:         middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func loadReferenceData(ctx context.Context, repo usecase.ChartRepository) (usecase.ReferenceData, error) {
	chart, err := repo.LoadChart(ctx)
	if err != nil {
		return usecase.ReferenceData{}, fmt.Errorf("load chart of accounts: %w", err)
	}
	sectors, err := repo.LoadSectors(ctx)
	if err != nil {
		return usecase.ReferenceData{}, fmt.Errorf("load sectors: %w", err)
	}
	subledgers, err := repo.LoadSubledgerAccounts(ctx)
	if err != nil {
		return usecase.ReferenceData{}, fmt.Errorf("load subledger accounts: %w", err)
	}

	log.Info().
		Int("subledger_accounts", len(subledgers)).
		Msg("reference data loaded")

	return usecase.ReferenceData{
		Chart:      chart,
		Sectors:    sectors,
		Subledgers: subledgers,
	}, nil
}
