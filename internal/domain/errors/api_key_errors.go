package errors

import (
	"fmt"

	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

const (
	MsgMissingAuthorizationHeader = "Missing Authorization header"
	MsgInvalidAuthorizationFormat = "Invalid Authorization header format. Expected: ApiKey <key>"
	MsgEmptyAPIKey                = "API key is empty"
	MsgInvalidAPIKey              = "Invalid or missing API key"
	MsgRevokedAPIKey              = "API key has been revoked"
	MsgMerchantNotApproved        = "Merchant account is not approved"
	MsgKeyGenerationNotAllowed    = "Only approved merchants can generate API keys"
	MsgRevokeForbidden            = "You do not have permission to revoke this API key"
)

func unauthorized(message string) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrUnauthorized, message, nil)
}

func NewMissingAuthorizationHeaderError() *apperrors.AppError {
	return unauthorized(MsgMissingAuthorizationHeader)
}

func NewInvalidAuthorizationFormatError() *apperrors.AppError {
	return unauthorized(MsgInvalidAuthorizationFormat)
}

func NewEmptyAPIKeyError() *apperrors.AppError {
	return unauthorized(MsgEmptyAPIKey)
}

// NewInvalidAPIKeyError covers both a blank key and an unknown digest.
func NewInvalidAPIKeyError() *apperrors.AppError {
	return unauthorized(MsgInvalidAPIKey)
}

func NewRevokedAPIKeyError() *apperrors.AppError {
	return unauthorized(MsgRevokedAPIKey)
}

func NewMerchantNotApprovedError() *apperrors.AppError {
	return unauthorized(MsgMerchantNotApproved)
}

func NewKeyGenerationNotAllowedError() *apperrors.AppError {
	return unauthorized(MsgKeyGenerationNotAllowed)
}

func NewAPIKeyNotFoundError(id int64) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrNotFound, fmt.Sprintf("API key not found with ID: %d", id), nil)
}

func NewRevokeForbiddenError() *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrForbidden, MsgRevokeForbidden, nil)
}
