package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
	"go.uber.org/zap"
)

// RoleAdmin is the only role allowed on the admin routes
const RoleAdmin = "admin"

// AdminClaims are the claims carried by an admin bearer token
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminUser represents an authenticated operator
type AdminUser struct {
	Subject string
	Role    string
}

// JWTConfig holds the configuration for the admin JWT middleware
type JWTConfig struct {
	Secret string
	Issuer string
	Logger *zap.Logger
}

// AdminJWTMiddleware validates HS256 bearer tokens and requires the admin role
func AdminJWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				config.Logger.Warn("Missing authorization header",
					zap.String("path", path),
					zap.String("method", c.Request().Method))
				return apperrors.NewAppError(apperrors.ErrUnauthorized, "Authorization header required", nil)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				config.Logger.Warn("Invalid authorization header format",
					zap.String("path", path))
				return apperrors.NewAppError(apperrors.ErrUnauthorized, "Invalid authorization header format. Expected: Bearer <token>", nil)
			}

			claims := &AdminClaims{}
			options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
			if config.Issuer != "" {
				options = append(options, jwt.WithIssuer(config.Issuer))
			}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(config.Secret), nil
			}, options...)
			if err != nil || !token.Valid {
				config.Logger.Warn("JWT validation failed",
					zap.Error(err),
					zap.String("path", path))
				return apperrors.NewAppError(apperrors.ErrUnauthorized, "Invalid or expired token", err)
			}

			if claims.Role != RoleAdmin {
				config.Logger.Warn("Admin role required",
					zap.String("subject", claims.Subject),
					zap.String("role", claims.Role),
					zap.String("path", path))
				return apperrors.NewAppError(apperrors.ErrForbidden, "Admin role required", nil)
			}

			admin := &AdminUser{Subject: claims.Subject, Role: claims.Role}
			ctx := context.WithValue(c.Request().Context(), adminContextKey, admin)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("admin_subject", admin.Subject)

			config.Logger.Debug("Admin authenticated",
				zap.String("subject", admin.Subject),
				zap.String("path", path))

			return next(c)
		}
	}
}

// GetAdminFromContext extracts the authenticated operator from the request context
func GetAdminFromContext(c echo.Context) (*AdminUser, error) {
	admin, ok := c.Request().Context().Value(adminContextKey).(*AdminUser)
	if !ok || admin == nil {
		return nil, fmt.Errorf("no authenticated admin found in context")
	}
	return admin, nil
}

// IssueAdminToken signs an admin token for subject valid for ttl
func IssueAdminToken(secret, issuer, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
