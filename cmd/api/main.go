package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voltx-wallet-engine/config"
	"voltx-wallet-engine/internal/adapter/broadcast"
	httpHandler "voltx-wallet-engine/internal/adapter/http/handler"
	"voltx-wallet-engine/internal/adapter/rates"
	"voltx-wallet-engine/internal/adapter/storage"
	pgStorage "voltx-wallet-engine/internal/adapter/storage/postgres"
	redisStorage "voltx-wallet-engine/internal/adapter/storage/redis"
	"voltx-wallet-engine/internal/core/ports"
	"voltx-wallet-engine/internal/service"
	"voltx-wallet-engine/pkg/logger"
	"voltx-wallet-engine/pkg/metrics"
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
		Msg("Starting VoltX Wallet Engine")

	ctx := context.Background()

	// Initialize Redis client (hot-path storage)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	kv := redisStorage.NewKVStore(rdb)
	healthCheckers := []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)}

	// Optional PostgreSQL archive
	var archiveRepo ports.ArchiveRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		repo := pgStorage.NewArchiveRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to create archive schema")
		}
		archiveRepo = repo
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("PostgreSQL archive enabled")
	}

	// Metrics registry
	met := metrics.New()

	// External collaborators
	rateProvider, err := rates.NewProvider(cfg.Rates)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rate provider")
	}
	broadcaster := broadcast.NewBroadcaster(cfg.Wallet.BroadcastLatency, cfg.Wallet.LightningLatency, log)
	settlement := broadcast.NewSettlement(cfg.Wallet.SettlementLatency, log)

	// Core services
	walletRepo := storage.NewWalletRepo(kv)
	ledger := service.NewBalanceLedger(kv, met, log)
	rateCache := service.NewRateCache(rateProvider, kv, met, log)
	feeCollector := service.NewFeeCollector(kv, cfg.Wallet.FeeCollectionAddress, met, log)
	historyStore := service.NewHistoryStore(kv, log)
	securitySvc := service.NewSecurityService(kv, cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer, log)

	// Orchestrators
	transferSvc := service.NewTransferService(
		ledger,
		walletRepo,
		broadcaster,
		feeCollector,
		historyStore,
		archiveRepo,
		cfg.Wallet.BroadcastTimeout,
		met,
		log,
	)
	conversionSvc := service.NewConversionService(
		ledger,
		rateCache,
		feeCollector,
		historyStore,
		archiveRepo,
		settlement,
		kv,
		cfg.Wallet.SettlementTimeout,
		met,
		log,
	)
	walletSvc := service.NewWalletService(walletRepo, ledger, rateCache, kv, log)

	// Auto-convert balance monitor
	monitor := service.NewAutoConvertMonitor(conversionSvc, ledger, cfg.Wallet.AutoConvertEvery, log)
	if err := monitor.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start auto-convert monitor")
	}
	defer func() {
		if err := monitor.Stop(); err != nil {
			log.Error().Err(err).Msg("Auto-convert monitor shutdown failed")
		}
	}()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		TransferSvc:    transferSvc,
		ConversionSvc:  conversionSvc,
		SecuritySvc:    securitySvc,
		HistoryStore:   historyStore,
		FeeCollector:   feeCollector,
		ArchiveRepo:    archiveRepo,
		HealthCheckers: healthCheckers,
		Metrics:        met,
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

	// Let staged fee completions reach the store before exiting
	feeCollector.Drain()

	log.Info().Msg("Server exited")
}
