// Package main is the entry point for the Savvy Wallet API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/slaxamine/savvy-gemini-wallet/config"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/adapter"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/assistant"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/category"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/dashboard"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/transaction"
	"github.com/slaxamine/savvy-gemini-wallet/internal/application/usecase/wallet"
	"github.com/slaxamine/savvy-gemini-wallet/internal/infra/server/router"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/controller"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/entrypoint/middleware"
	"github.com/slaxamine/savvy-gemini-wallet/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Savvy Wallet API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Connect the snapshot store. Redis being down is not fatal: the wallet
	// falls back to an in-memory gateway and runs in degraded mode, losing
	// state on restart.
	gateway := connectSnapshotGateway(cfg)

	// Load the wallet session, seeding defaults for missing records
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	session, err := persistence.NewSession(ctx, gateway, cfg.Wallet.DefaultBalance)
	cancel()
	if err != nil {
		slog.Error("Failed to load wallet session", "error", err)
		os.Exit(1)
	}

	// Create use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(session, session)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(session)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(session, session)

	listCategoriesUseCase := category.NewListCategoriesUseCase(session)
	createCategoryUseCase := category.NewCreateCategoryUseCase(session)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(session, session)

	getSummaryUseCase := wallet.NewGetSummaryUseCase(session, cfg.Wallet.LowBalanceThreshold)
	updateBalanceUseCase := wallet.NewUpdateBalanceUseCase(session)

	getTotalsUseCase := dashboard.NewGetTotalsUseCase(session)
	getBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(session, session)
	getOverviewUseCase := dashboard.NewGetMonthlyOverviewUseCase(session)
	getExpensesUseCase := dashboard.NewGetExpensesOverTimeUseCase(session)

	answerQuestionUseCase := assistant.NewAnswerQuestionUseCase(
		session,
		session,
		cfg.Wallet.Currency,
		cfg.Assistant.ThinkDelay,
	)

	// Create controllers and middleware
	healthChecker := func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return gateway.HealthCheck(ctx)
	}
	healthController := controller.NewHealthController(healthChecker)
	walletController := controller.NewWalletController(getSummaryUseCase, updateBalanceUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
	)
	dashboardController := controller.NewDashboardController(
		getTotalsUseCase,
		getBreakdownUseCase,
		getOverviewUseCase,
		getExpensesUseCase,
	)
	assistantController := controller.NewAssistantController(answerQuestionUseCase)
	askRateLimiter := middleware.NewRateLimiter()

	// Setup router
	r := router.NewRouter(
		healthController,
		walletController,
		transactionController,
		categoryController,
		dashboardController,
		assistantController,
		askRateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// connectSnapshotGateway builds the Redis gateway, or the in-memory fallback
// when Redis is unreachable at startup.
func connectSnapshotGateway(cfg *config.Config) adapter.SnapshotGateway {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, running with in-memory store", "error", err)
		return persistence.NewMemoryGateway()
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis connection failed, running with in-memory store",
			"error", err,
		)
		return persistence.NewMemoryGateway()
	}

	slog.Info("Connected to Redis snapshot store")
	return persistence.NewRedisGateway(client)
}
