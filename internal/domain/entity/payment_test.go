package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
)

var allPaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusSuccess,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	legal := map[[2]PaymentStatus]bool{
		{PaymentStatusPending, PaymentStatusSuccess}:  true,
		{PaymentStatusPending, PaymentStatusFailed}:   true,
		{PaymentStatusSuccess, PaymentStatusRefunded}: true,
	}

	for _, from := range allPaymentStatuses {
		for _, to := range allPaymentStatuses {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				want := legal[[2]PaymentStatus{from, to}]
				assert.Equal(t, want, from.CanTransitionTo(to))

				next, err := TransitionPayment(from, to)
				if want {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}
				require.Error(t, err)
				assert.Equal(t, from, next)
				assert.Equal(t, apperrors.ErrInvalidStateTransition, apperrors.CodeOf(err))
				assert.Equal(t, "Cannot transition payment from "+from.String()+" to "+to.String(), err.Error())
			})
		}
	}
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.False(t, PaymentStatusSuccess.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
	assert.True(t, PaymentStatusRefunded.IsTerminal())
	assert.False(t, PaymentStatus("UNKNOWN").IsValid())
}

func TestPayment_WithStatus(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	original := &Payment{ID: 1, MerchantID: 2, Status: PaymentStatusSuccess}

	refunded := original.WithStatus(PaymentStatusRefunded, now)

	assert.Equal(t, PaymentStatusSuccess, original.Status)
	assert.Nil(t, original.RefundedAt)
	assert.Equal(t, PaymentStatusRefunded, refunded.Status)
	assert.Equal(t, DefaultRefundReason, refunded.RefundReason)
	require.NotNil(t, refunded.RefundedAt)
	assert.Equal(t, now, *refunded.RefundedAt)
	assert.Equal(t, now, refunded.UpdatedAt)
}

func TestValidatePaymentAmount(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr bool
	}{
		{"49.99", false},
		{"0.01", false},
		{"999999.99", false},
		{"0", true},
		{"-1.00", true},
		{"10.001", true},
		{"1000000.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := ValidatePaymentAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.Equal(t, apperrors.ErrInvalidArgument, apperrors.CodeOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("USD"))
	assert.Error(t, ValidateCurrency("usd"))
	assert.Error(t, ValidateCurrency("US"))
	assert.Error(t, ValidateCurrency("USDT"))
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, TransactionActionStatusUpdate, ActionFor(PaymentStatusSuccess))
	assert.Equal(t, TransactionActionStatusUpdate, ActionFor(PaymentStatusFailed))
	assert.Equal(t, TransactionActionRefund, ActionFor(PaymentStatusRefunded))
}

func TestTransactionConstructors(t *testing.T) {
	payment := &Payment{ID: 7, Status: PaymentStatusPending}

	created := NewCreateTransaction(payment)
	assert.Equal(t, TransactionActionCreate, created.Action)
	assert.Nil(t, created.PreviousStatus)
	assert.Equal(t, PaymentStatusPending, *created.NewStatus)
	assert.Equal(t, "Payment created", created.Notes)

	updated := NewStatusUpdateTransaction(payment, PaymentStatusPending, PaymentStatusSuccess)
	assert.Equal(t, PaymentStatusPending, *updated.PreviousStatus)
	assert.Equal(t, PaymentStatusSuccess, *updated.NewStatus)
	assert.Equal(t, "Status changed from PENDING to SUCCESS", updated.Notes)

	refund := NewRefundTransaction(payment, DefaultRefundReason)
	assert.Equal(t, TransactionActionRefund, refund.Action)
	assert.Equal(t, PaymentStatusSuccess, *refund.PreviousStatus)
	assert.Equal(t, PaymentStatusRefunded, *refund.NewStatus)
	assert.Equal(t, "Refund issued: Refund requested", refund.Notes)
	assert.Equal(t, int64(7), refund.PaymentID)
}

func TestNewPaymentEvent(t *testing.T) {
	payment := &Payment{ID: 3, MerchantID: 9, Amount: decimal.RequireFromString("49.99"), Currency: "USD", Status: PaymentStatusPending}

	created := NewPaymentEvent(payment, "")
	assert.Equal(t, PaymentEventCreated, created.Type)
	assert.NotEmpty(t, created.EventID)

	success := payment.WithStatus(PaymentStatusSuccess, time.Now())
	assert.Equal(t, PaymentEventStatusUpdated, NewPaymentEvent(success, PaymentStatusPending).Type)

	refunded := success.WithStatus(PaymentStatusRefunded, time.Now())
	event := NewPaymentEvent(refunded, PaymentStatusSuccess)
	assert.Equal(t, PaymentEventRefunded, event.Type)
	assert.Equal(t, PaymentStatusSuccess, event.PreviousStatus)
	assert.Equal(t, int64(9), event.MerchantID)
}
