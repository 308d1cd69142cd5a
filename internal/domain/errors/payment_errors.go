package errors

import (
	"fmt"

	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

const MsgPaymentAccessDenied = "Access denied: You do not have permission to access this payment"

func NewPaymentNotFoundError(id int64) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrNotFound, fmt.Sprintf("Payment not found with ID: %d", id), nil)
}

func NewPaymentAccessDeniedError() *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrForbidden, MsgPaymentAccessDenied, nil)
}

// NewPaymentTransitionError reports a status change outside the payment state machine.
func NewPaymentTransitionError(from, to string) *apperrors.AppError {
	return apperrors.NewAppError(
		apperrors.ErrInvalidStateTransition,
		fmt.Sprintf("Cannot transition payment from %s to %s", from, to),
		nil,
	).WithDetails(map[string]interface{}{
		DetailCurrentState:    from,
		DetailAttemptedAction: to,
	})
}
