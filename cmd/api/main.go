package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digiteen-wallet/config"
	httpHandler "digiteen-wallet/internal/adapter/http/handler"
	pgStorage "digiteen-wallet/internal/adapter/storage/postgres"
	redisStorage "digiteen-wallet/internal/adapter/storage/redis"
	"digiteen-wallet/internal/core/ports"
	"digiteen-wallet/internal/service"
	"digiteen-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting DigiTeen Wallet")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	teenRepo := pgStorage.NewTeenRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	activityRepo := pgStorage.NewActivityRepo(pool)
	cardRepo := pgStorage.NewCardRepo(pool)
	invitationRepo := pgStorage.NewInvitationRepo(pool)
	depositRepo := pgStorage.NewDepositRequestRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	receiptCache := redisStorage.NewReceiptCache(rdb)
	changeFeed := redisStorage.NewChangeFeed(rdb, log)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(teenRepo, walletRepo, hashSvc, tokenSvc, transactor, cfg.Wallet.SeedDigits, log)
	ledgerSvc := service.NewLedgerService(walletRepo, activityRepo, log)
	workflowSvc := service.NewWorkflowService(
		walletRepo,
		activityRepo,
		depositRepo,
		receiptCache,
		changeFeed,
		transactor,
		cfg.Wallet.ReceiptTTL,
		log,
	)
	invitationSvc := service.NewInvitationService(invitationRepo, teenRepo, changeFeed, log)
	cardSvc := service.NewCardService(cardRepo, invitationSvc, changeFeed, log)
	profileSvc := service.NewProfileService(teenRepo, cardRepo)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		LedgerSvc:      ledgerSvc,
		WorkflowSvc:    workflowSvc,
		CardSvc:        cardSvc,
		InvitationSvc:  invitationSvc,
		ProfileSvc:     profileSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
