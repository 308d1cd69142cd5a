package entity

import (
	"fmt"
	"time"
)

type TransactionAction string

const (
	TransactionActionCreate       TransactionAction = "CREATE"
	TransactionActionStatusUpdate TransactionAction = "STATUS_UPDATE"
	TransactionActionRefund       TransactionAction = "REFUND"
)

const NoteCreated = "Payment created"

// auditActions maps a target payment status to the audit action recorded for it
var auditActions = map[PaymentStatus]TransactionAction{
	PaymentStatusSuccess:  TransactionActionStatusUpdate,
	PaymentStatusFailed:   TransactionActionStatusUpdate,
	PaymentStatusRefunded: TransactionActionRefund,
}

// Transaction is an append-only audit record of a payment lifecycle event.
type Transaction struct {
	ID             int64             `json:"id"`
	PaymentID      int64             `json:"payment_id"`
	Action         TransactionAction `json:"action"`
	PreviousStatus *PaymentStatus    `json:"previous_status,omitempty"`
	NewStatus      *PaymentStatus    `json:"new_status,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ActionFor returns the audit action for a transition into status.
func ActionFor(status PaymentStatus) TransactionAction {
	if action, ok := auditActions[status]; ok {
		return action
	}
	return TransactionActionStatusUpdate
}

func NewCreateTransaction(payment *Payment) *Transaction {
	status := payment.Status
	return &Transaction{
		PaymentID: payment.ID,
		Action:    TransactionActionCreate,
		NewStatus: &status,
		Notes:     NoteCreated,
	}
}

func NewStatusUpdateTransaction(payment *Payment, previous, next PaymentStatus) *Transaction {
	return &Transaction{
		PaymentID:      payment.ID,
		Action:         TransactionActionStatusUpdate,
		PreviousStatus: &previous,
		NewStatus:      &next,
		Notes:          fmt.Sprintf("Status changed from %s to %s", previous, next),
	}
}

func NewRefundTransaction(payment *Payment, reason string) *Transaction {
	previous := PaymentStatusSuccess
	next := PaymentStatusRefunded
	return &Transaction{
		PaymentID:      payment.ID,
		Action:         TransactionActionRefund,
		PreviousStatus: &previous,
		NewStatus:      &next,
		Notes:          "Refund issued: " + reason,
	}
}
