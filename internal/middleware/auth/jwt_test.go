package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/merchant-gateway/pkg/logger"
	"go.uber.org/zap"
)

const (
	testSecret = "test-secret"
	testIssuer = "merchant-gateway"
)

func newAdminEcho() *echo.Echo {
	e := echo.New()
	logger.WithEchoLogger(e, zap.NewNop())
	admin := e.Group("/api/admin", AdminJWTMiddleware(JWTConfig{
		Secret: testSecret,
		Issuer: testIssuer,
		Logger: zap.NewNop(),
	}))
	admin.GET("/ping", func(c echo.Context) error {
		user, err := GetAdminFromContext(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, user.Subject)
	})
	return e
}

func signToken(t *testing.T, claims AdminClaims, method jwt.SigningMethod, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func adminRequest(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminJWTMiddleware_SuccessfulAuthentication(t *testing.T) {
	e := newAdminEcho()
	token, err := IssueAdminToken(testSecret, testIssuer, "ops@acme.com", time.Hour)
	require.NoError(t, err)

	rec := adminRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ops@acme.com", rec.Body.String())
}

func TestAdminJWTMiddleware_Rejections(t *testing.T) {
	e := newAdminEcho()
	now := time.Now()
	valid := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	wrongIssuer := valid
	wrongIssuer.Issuer = "someone-else"
	merchantRole := valid
	merchantRole.Role = "merchant"

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "api key scheme", header: "ApiKey sk_live_x", wantStatus: http.StatusUnauthorized, wantBody: "Invalid authorization header format"},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "wrong secret", header: "Bearer " + signToken(t, valid, jwt.SigningMethodHS256, "other"), wantStatus: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "wrong algorithm", header: "Bearer " + signToken(t, valid, jwt.SigningMethodHS512, testSecret), wantStatus: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "expired", header: "Bearer " + signToken(t, expired, jwt.SigningMethodHS256, testSecret), wantStatus: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "wrong issuer", header: "Bearer " + signToken(t, wrongIssuer, jwt.SigningMethodHS256, testSecret), wantStatus: http.StatusUnauthorized, wantBody: "Invalid or expired token"},
		{name: "not an admin", header: "Bearer " + signToken(t, merchantRole, jwt.SigningMethodHS256, testSecret), wantStatus: http.StatusForbidden, wantBody: "Admin role required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := adminRequest(e, tt.header)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
