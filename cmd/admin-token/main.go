package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/merchant-gateway/internal/config"
	"github.com/wekeepgrowing/merchant-gateway/internal/middleware/auth"
)

// admin-token prints a bearer token for the /api/v1/admin routes
func main() {
	subject := flag.String("subject", "", "operator identity recorded in admin audit logs")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if *subject == "" {
		logger.Fatal("-subject is required")
	}
	if cfg.Auth.AdminJWTSecret == "" {
		logger.Fatal("auth.admin_jwt_secret is not configured")
	}

	token, err := auth.IssueAdminToken(cfg.Auth.AdminJWTSecret, cfg.Auth.AdminJWTIssuer, *subject, *ttl)
	if err != nil {
		logger.Fatal("Failed to issue admin token", zap.Error(err))
	}

	logger.Info("Issued admin token",
		zap.String("subject", *subject),
		zap.Duration("ttl", *ttl))
	fmt.Println(token)
}
