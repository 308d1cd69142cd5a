package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

func fieldErrorsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrInvalidArgument, appErr.Code())
	assert.Equal(t, msgValidationFailed, appErr.Message())

	fields, ok := appErr.Details()[apperrors.FieldErrorsKey].(map[string]string)
	require.True(t, ok)
	return fields
}

func amountPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestRequestValidator_RegisterMerchant(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"strong", "Secure1!pass", true},
		{"no uppercase", "secure1!pass", false},
		{"no digit", "Secure!!pass", false},
		{"no special", "Secure11pass", false},
		{"unsupported special", "Secure1*pass", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&RegisterMerchantRequest{Name: "Acme", Email: "a@acme.com", Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			fields := fieldErrorsOf(t, err)
			assert.Contains(t, fields["password"], "1 uppercase letter")
		})
	}

	t.Run("short password and bad email", func(t *testing.T) {
		fields := fieldErrorsOf(t, v.Validate(&RegisterMerchantRequest{Name: "Acme", Email: "acme", Password: "S1!"}))
		assert.Equal(t, "Password must be at least 8 characters long", fields["password"])
		assert.Equal(t, "Email must be a valid email address", fields["email"])
	})

	t.Run("missing name", func(t *testing.T) {
		fields := fieldErrorsOf(t, v.Validate(&RegisterMerchantRequest{Email: "a@acme.com", Password: "Secure1!pass"}))
		assert.Equal(t, "Name is required", fields["name"])
	})
}

func TestRequestValidator_CreatePayment(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name   string
		amount *decimal.Decimal
		valid  bool
	}{
		{"smallest amount", amountPtr("0.01"), true},
		{"largest amount", amountPtr("999999.99"), true},
		{"zero", amountPtr("0"), false},
		{"negative", amountPtr("-5"), false},
		{"three decimals", amountPtr("1.001"), false},
		{"seven integer digits", amountPtr("1000000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&CreatePaymentRequest{Amount: tt.amount, Currency: "USD"})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			fields := fieldErrorsOf(t, err)
			assert.Contains(t, fields, "amount")
		})
	}

	t.Run("missing amount", func(t *testing.T) {
		fields := fieldErrorsOf(t, v.Validate(&CreatePaymentRequest{Currency: "USD"}))
		assert.Equal(t, "Amount is required", fields["amount"])
	})

	t.Run("lowercase currency", func(t *testing.T) {
		fields := fieldErrorsOf(t, v.Validate(&CreatePaymentRequest{Amount: amountPtr("10"), Currency: "usd"}))
		assert.Contains(t, fields["currency"], "ISO 4217")
	})

	t.Run("long description", func(t *testing.T) {
		fields := fieldErrorsOf(t, v.Validate(&CreatePaymentRequest{
			Amount:      amountPtr("10"),
			Currency:    "EUR",
			Description: strings.Repeat("x", 501),
		}))
		assert.Equal(t, "Description must not exceed 500 characters", fields["description"])
	})
}

func TestRequestValidator_StatusAndReason(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(&UpdatePaymentStatusRequest{Status: "FAILED"}))

	fields := fieldErrorsOf(t, v.Validate(&UpdatePaymentStatusRequest{Status: "SETTLED"}))
	assert.Equal(t, "Status must be one of: PENDING, SUCCESS, FAILED, REFUNDED", fields["status"])

	fields = fieldErrorsOf(t, v.Validate(&MerchantActionRequest{Reason: "too short"}))
	assert.Equal(t, "Reason must be at least 10 characters long", fields["reason"])
}

func TestBindAndValidate(t *testing.T) {
	e := echo.New()
	e.Validator = NewRequestValidator()

	newContext := func(body string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("decodes and validates", func(t *testing.T) {
		var req CreatePaymentRequest
		require.NoError(t, bindAndValidate(newContext(`{"amount":12.50,"currency":"USD"}`), &req))
		require.NotNil(t, req.Amount)
		assert.True(t, req.Amount.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("malformed json", func(t *testing.T) {
		var req CreatePaymentRequest
		err := bindAndValidate(newContext(`{"amount":`), &req)
		assert.Equal(t, apperrors.ErrMalformedRequest, apperrors.CodeOf(err))
	})

	t.Run("invalid fields", func(t *testing.T) {
		var req CreatePaymentRequest
		err := bindAndValidate(newContext(`{"amount":0,"currency":"US"}`), &req)
		fields := fieldErrorsOf(t, err)
		assert.Len(t, fields, 2)
	})
}
