package logger

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskAuthorization(t *testing.T) {
	assert.Equal(t, "ApiKey sk_live_0123...", MaskAuthorization("ApiKey sk_live_0123456789abcdef"))
	assert.Equal(t, "Bearer [MASKED]", MaskAuthorization("Bearer short"))
	assert.Equal(t, "[MASKED]", MaskAuthorization("sk_live_nospace"))
}

func TestHTTPErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := echo.New()
	WithEchoLogger(e, zap.New(core))

	e.GET("/payments/:id", func(c echo.Context) error {
		return apperrors.NewAppError(apperrors.ErrForbidden, "Access denied: You do not have permission to access this payment", nil)
	})
	e.GET("/boom", func(c echo.Context) error {
		return apperrors.New("sql: database is closed")
	})

	t.Run("app error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payments/3", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body apperrors.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "FORBIDDEN", body.Error)
		assert.Equal(t, "/payments/3", body.Path)
		assert.Equal(t, http.StatusForbidden, body.Status)
	})

	t.Run("unclassified error hides details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "database is closed")
		assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error":"NOT_FOUND"`)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/boom", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	// only the unclassified failure is logged at error level
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
