package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/merchant-gateway/internal/config"
	"github.com/wekeepgrowing/merchant-gateway/internal/infrastructure/crypto"
	"github.com/wekeepgrowing/merchant-gateway/internal/infrastructure/database"
	"github.com/wekeepgrowing/merchant-gateway/internal/infrastructure/events"
	grpcServer "github.com/wekeepgrowing/merchant-gateway/internal/infrastructure/grpc"
	httpServer "github.com/wekeepgrowing/merchant-gateway/internal/infrastructure/http"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase"
	"github.com/wekeepgrowing/merchant-gateway/pkg/logger"
	"github.com/wekeepgrowing/merchant-gateway/pkg/metrics"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Log.Development,
		ServiceName: cfg.Service.Name,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	repos := database.NewRepositories(db, zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	transitions := metrics.NewTransitionMetrics(registry)

	publisher, err := events.NewPaymentEventPublisher(ctx, cfg.Events, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize event publisher", zap.Error(err))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			zapLogger.Error("Failed to close event publisher", zap.Error(err))
		}
	}()

	keyGenerator := crypto.NewSHA256KeyGenerator()
	audit := usecase.NewTransactionService(repos.Transaction, zapLogger)
	services := httpServer.Services{
		Merchants: usecase.NewMerchantService(repos.Merchant, repos.APIKey, repos.Transactor,
			crypto.NewBcryptPasswordHasher(), keyGenerator, transitions, zapLogger),
		APIKeys: usecase.NewAPIKeyService(repos.APIKey, repos.Merchant, keyGenerator, zapLogger),
		Payments: usecase.NewPaymentService(repos.Payment, repos.Merchant, repos.Transactor,
			audit, publisher, transitions, zapLogger),
		Audit: audit,
	}

	// Initialize servers
	grpcSrv := grpcServer.NewServer(cfg, zapLogger)
	httpSrv := httpServer.NewServer(cfg, zapLogger, services, registry)

	// Start servers
	go func() {
		if err := grpcSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start gRPC server", zap.Error(err))
		}
	}()

	go func() {
		if err := httpSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down servers...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Server.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := grpcSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown gRPC server", zap.Error(err))
	}

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Servers shut down successfully")
}
