package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

const (
	msgValidationFailed = "Request validation failed"
	msgMalformedRequest = "Request body is malformed or unreadable"

	passwordSpecialChars = "@#$%^&+=!"
)

// RequestValidator implements echo.Validator with go-playground/validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator registers the gateway's custom rules
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// decimals are validated through their canonical string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("password", validatePassword)
	_ = v.RegisterValidation("amount", validateAmount)
	_ = v.RegisterValidation("currency", validateCurrency)

	return &RequestValidator{validate: v}
}

var _ echo.Validator = (*RequestValidator)(nil)

// Validate returns a VALIDATION_ERROR carrying one message per failed field
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !apperrors.As(err, &validationErrors) {
		return apperrors.NewAppError(apperrors.ErrMalformedRequest, msgMalformedRequest, err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}

	return apperrors.NewAppError(apperrors.ErrInvalidArgument, msgValidationFailed, err).
		WithDetails(map[string]interface{}{apperrors.FieldErrorsKey: fields})
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
	case "password":
		return "Password must contain at least 1 uppercase letter, 1 number, and 1 special character (" + passwordSpecialChars + ")"
	case "amount":
		return "Amount must be at least 0.01 with at most 6 digits and 2 decimal places"
	case "currency":
		return "Currency must be a valid ISO 4217 code (e.g., USD, EUR)"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return label + " is invalid"
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
		strings.ContainsAny(password, "0123456789") &&
		strings.ContainsAny(password, passwordSpecialChars)
}

func validateAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return entity.ValidatePaymentAmount(amount) == nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	return entity.ValidateCurrency(fl.Field().String()) == nil
}

// bindAndValidate decodes the request body into req and validates it
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrMalformedRequest, msgMalformedRequest, err)
	}
	return c.Validate(req)
}
