package errors

import (
	"fmt"

	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

const (
	MsgEmailAlreadyRegistered = "Email already registered"
	MsgInvalidCredentials     = "Invalid email or password"
)

// Merchant lifecycle actions reported in invalid transition details
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionSuspend = "suspend"
)

// Detail keys attached to invalid state transition failures
const (
	DetailCurrentState    = "currentState"
	DetailAttemptedAction = "attemptedAction"
)

// NewEmailAlreadyRegisteredError is returned when the email belongs to an existing merchant.
func NewEmailAlreadyRegisteredError(err error) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrConflict, MsgEmailAlreadyRegistered, err)
}

func NewMerchantNotFoundError(id int64) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrNotFound, fmt.Sprintf("Merchant not found with ID: %d", id), nil)
}

func NewMerchantNotFoundByEmailError(email string) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrNotFound, fmt.Sprintf("Merchant not found with email: %s", email), nil)
}

// NewInvalidCredentialsError is identical for unknown email and wrong password.
func NewInvalidCredentialsError() *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrUnauthorized, MsgInvalidCredentials, nil)
}

// NewMerchantTransitionError reports an approve, reject or suspend attempted from the wrong status.
func NewMerchantTransitionError(currentStatus, action string) *apperrors.AppError {
	var message string
	switch action {
	case ActionApprove:
		message = fmt.Sprintf("Only merchants with PENDING status can be approved. Current status: %s", currentStatus)
	case ActionReject:
		message = fmt.Sprintf("Only merchants with PENDING status can be rejected. Current status: %s", currentStatus)
	case ActionSuspend:
		message = fmt.Sprintf("Only merchants with APPROVED status can be suspended. Current status: %s", currentStatus)
	default:
		message = fmt.Sprintf("Cannot perform '%s' action on resource in '%s' state", action, currentStatus)
	}

	return apperrors.NewAppError(apperrors.ErrInvalidStateTransition, message, nil).
		WithDetails(map[string]interface{}{
			DetailCurrentState:    currentStatus,
			DetailAttemptedAction: action,
		})
}
