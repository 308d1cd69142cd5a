package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentEventType string

const (
	PaymentEventCreated       PaymentEventType = "payment.created"
	PaymentEventStatusUpdated PaymentEventType = "payment.status_updated"
	PaymentEventRefunded      PaymentEventType = "payment.refunded"
)

// PaymentEvent is published after a payment mutation commits
type PaymentEvent struct {
	EventID        string           `json:"eventId"`
	Type           PaymentEventType `json:"type"`
	PaymentID      int64            `json:"paymentId"`
	MerchantID     int64            `json:"merchantId"`
	Amount         decimal.Decimal  `json:"amount"`
	Currency       string           `json:"currency"`
	PreviousStatus PaymentStatus    `json:"previousStatus,omitempty"`
	Status         PaymentStatus    `json:"status"`
	OccurredAt     time.Time        `json:"occurredAt"`
}

// NewPaymentEvent describes the payment's move from previous to its current status.
// An empty previous status marks creation.
func NewPaymentEvent(payment *Payment, previous PaymentStatus) *PaymentEvent {
	eventType := PaymentEventStatusUpdated
	switch {
	case previous == "":
		eventType = PaymentEventCreated
	case payment.Status == PaymentStatusRefunded:
		eventType = PaymentEventRefunded
	}

	return &PaymentEvent{
		EventID:        uuid.NewString(),
		Type:           eventType,
		PaymentID:      payment.ID,
		MerchantID:     payment.MerchantID,
		Amount:         payment.Amount,
		Currency:       payment.Currency,
		PreviousStatus: previous,
		Status:         payment.Status,
		OccurredAt:     time.Now().UTC(),
	}
}
