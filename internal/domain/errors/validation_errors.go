package errors

import (
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

// NewInvalidInputError is returned for arguments rejected before any storage access.
func NewInvalidInputError(message string) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrInvalidArgument, message, nil)
}

// NewInvalidFieldError attaches a single field error, rendered as fieldErrors over HTTP.
func NewInvalidFieldError(field, message string) *apperrors.AppError {
	return NewInvalidInputError(message).WithDetails(map[string]interface{}{
		apperrors.FieldErrorsKey: map[string]string{field: message},
	})
}
