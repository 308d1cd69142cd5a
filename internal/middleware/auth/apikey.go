package auth

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	"go.uber.org/zap"
)

// Authenticator resolves an Authorization header to an approved merchant
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*entity.Merchant, error)
}

type contextKey string

const (
	merchantContextKey contextKey = "authenticated_merchant"
	adminContextKey    contextKey = "authenticated_admin"
)

// APIKeyConfig holds the configuration for the API key middleware
type APIKeyConfig struct {
	Authenticator Authenticator
	Logger        *zap.Logger
}

// APIKeyMiddleware authenticates merchants by the "ApiKey <key>" Authorization header
func APIKeyMiddleware(config APIKeyConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			merchant, err := config.Authenticator.Authenticate(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				config.Logger.Debug("API key authentication failed",
					zap.String("path", c.Request().URL.Path),
					zap.String("method", c.Request().Method),
					zap.Error(err))
				return err
			}

			ctx := context.WithValue(c.Request().Context(), merchantContextKey, merchant)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("merchant_id", merchant.ID)

			return next(c)
		}
	}
}

// GetMerchantFromContext extracts the authenticated merchant from the request context
func GetMerchantFromContext(c echo.Context) (*entity.Merchant, bool) {
	merchant, ok := c.Request().Context().Value(merchantContextKey).(*entity.Merchant)
	return merchant, ok && merchant != nil
}

// RequireMerchant returns the authenticated merchant or an Unauthorized error
func RequireMerchant(c echo.Context) (*entity.Merchant, error) {
	merchant, ok := GetMerchantFromContext(c)
	if !ok {
		return nil, domainErrors.NewInvalidAPIKeyError()
	}
	return merchant, nil
}
