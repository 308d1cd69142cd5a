package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	"github.com/wekeepgrowing/merchant-gateway/pkg/logger"
	"go.uber.org/zap"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, header string) (*entity.Merchant, error) {
	args := m.Called(ctx, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Merchant), args.Error(1)
}

func newMerchantEcho(authenticator Authenticator) *echo.Echo {
	e := echo.New()
	logger.WithEchoLogger(e, zap.NewNop())
	api := e.Group("/api", APIKeyMiddleware(APIKeyConfig{
		Authenticator: authenticator,
		Logger:        zap.NewNop(),
	}))
	api.GET("/payments", func(c echo.Context) error {
		merchant, err := RequireMerchant(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, strconv.FormatInt(merchant.ID, 10))
	})
	e.GET("/health", func(c echo.Context) error {
		_, ok := GetMerchantFromContext(c)
		return c.String(http.StatusOK, strconv.FormatBool(ok))
	})
	return e
}

func TestAPIKeyMiddleware_StoresMerchant(t *testing.T) {
	authenticator := new(MockAuthenticator)
	authenticator.On("Authenticate", mock.Anything, "ApiKey sk_live_abc").
		Return(&entity.Merchant{ID: 42, Status: entity.MerchantStatusApproved}, nil)
	e := newMerchantEcho(authenticator)

	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	req.Header.Set(echo.HeaderAuthorization, "ApiKey sk_live_abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
}

func TestAPIKeyMiddleware_RendersAuthenticationError(t *testing.T) {
	authenticator := new(MockAuthenticator)
	authenticator.On("Authenticate", mock.Anything, "").Return(nil, domainErrors.NewMissingAuthorizationHeaderError())
	e := newMerchantEcho(authenticator)

	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"UNAUTHORIZED"`)
	assert.Contains(t, rec.Body.String(), "Missing Authorization header")
	assert.Contains(t, rec.Body.String(), `"path":"/api/payments"`)
}

func TestAPIKeyMiddleware_OnlyGuardsItsGroup(t *testing.T) {
	authenticator := new(MockAuthenticator)
	e := newMerchantEcho(authenticator)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "false", rec.Body.String())
	authenticator.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}
