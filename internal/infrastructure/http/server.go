package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	handlers "github.com/wekeepgrowing/merchant-gateway/internal/adapter/handler/http"
	"github.com/wekeepgrowing/merchant-gateway/internal/config"
	"github.com/wekeepgrowing/merchant-gateway/internal/middleware/auth"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"github.com/wekeepgrowing/merchant-gateway/pkg/logger"
	"github.com/wekeepgrowing/merchant-gateway/pkg/metrics"
	"go.uber.org/zap"
)

// Services are the use cases exposed over HTTP
type Services struct {
	Merchants interfaces.MerchantUseCase
	APIKeys   interfaces.APIKeyUseCase
	Payments  interfaces.PaymentUseCase
	Audit     interfaces.AuditTrail
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	services Services
	registry *prometheus.Registry
}

// NewServer builds the echo instance with middleware and routes.
// registry backs both the HTTP metrics and the /metrics endpoint.
func NewServer(cfg *config.Config, logger *zap.Logger, services Services, registry *prometheus.Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.HTTP.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.HTTP.WriteTimeout
	e.Validator = handlers.NewRequestValidator()

	s := &Server{
		config:   cfg,
		logger:   logger,
		echo:     e,
		services: services,
		registry: registry,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	logger.WithEchoLogger(s.echo, s.logger)

	httpMetrics := metrics.NewHTTPMetrics(s.config.Service.Name, s.registry)

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(logger.NewEchoRequestLogger(s.logger))
	s.echo.Use(httpMetrics.Middleware())
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))

	merchantHandler := handlers.NewMerchantHandler(s.services.Merchants, s.logger)
	apiKeyHandler := handlers.NewAPIKeyHandler(s.services.APIKeys, s.logger)
	paymentHandler := handlers.NewPaymentHandler(s.services.Payments, s.services.Audit, s.logger)
	adminHandler := handlers.NewAdminHandler(s.services.Merchants, s.logger)

	v1 := s.echo.Group("/api/v1")

	// Public routes
	v1.POST("/merchants/register", merchantHandler.Register)
	v1.POST("/auth/login", merchantHandler.Login)

	// Merchant routes (ApiKey authentication)
	merchant := v1.Group("", auth.APIKeyMiddleware(auth.APIKeyConfig{
		Authenticator: s.services.APIKeys,
		Logger:        s.logger,
	}))

	merchant.GET("/merchants/profile", merchantHandler.Profile)

	keys := merchant.Group("/keys")
	keys.POST("", apiKeyHandler.Generate)
	keys.GET("", apiKeyHandler.List)
	keys.DELETE("/:keyId", apiKeyHandler.Revoke)

	payments := merchant.Group("/payments")
	payments.POST("", paymentHandler.Create)
	payments.GET("", paymentHandler.List)
	payments.GET("/:paymentId", paymentHandler.Get)
	payments.PUT("/:paymentId/status", paymentHandler.UpdateStatus)
	payments.POST("/:paymentId/refund", paymentHandler.Refund)
	payments.GET("/:paymentId/transactions", paymentHandler.Transactions)

	merchant.GET("/transactions", paymentHandler.MerchantTransactions)

	// Admin routes (bearer JWT with the admin role)
	if s.config.Auth.AdminJWTSecret == "" {
		s.logger.Warn("auth.admin_jwt_secret is empty, admin routes are disabled")
		return
	}

	admin := v1.Group("/admin/merchants", auth.AdminJWTMiddleware(auth.JWTConfig{
		Secret: s.config.Auth.AdminJWTSecret,
		Issuer: s.config.Auth.AdminJWTIssuer,
		Logger: s.logger,
	}))
	admin.GET("/:merchantId", adminHandler.GetMerchant)
	admin.POST("/:merchantId/approve", adminHandler.Approve)
	admin.POST("/:merchantId/reject", adminHandler.Reject)
	admin.POST("/:merchantId/suspend", adminHandler.Suspend)
}
