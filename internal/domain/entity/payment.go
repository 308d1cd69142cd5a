package entity

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// DefaultRefundReason is stored when a refund carries no reason of its own
const DefaultRefundReason = "Refund requested"

const (
	MaxAmountIntegerDigits  = 6
	MaxAmountFractionDigits = 2
	MaxDescriptionLength    = 500
)

var (
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

	// paymentTransitions lists every legal edge; anything absent is rejected
	paymentTransitions = map[PaymentStatus]map[PaymentStatus]bool{
		PaymentStatusPending: {
			PaymentStatusSuccess: true,
			PaymentStatusFailed:  true,
		},
		PaymentStatusSuccess: {
			PaymentStatusRefunded: true,
		},
	}
)

type Payment struct {
	ID           int64           `json:"id"`
	MerchantID   int64           `json:"merchant_id"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Description  string          `json:"description,omitempty"`
	Status       PaymentStatus   `json:"status"`
	RefundReason string          `json:"refund_reason,omitempty"`
	RefundedAt   *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves this status.
func (s PaymentStatus) IsTerminal() bool {
	return len(paymentTransitions[s]) == 0
}

// CanTransitionTo never allows a same-state transition.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return paymentTransitions[s][next]
}

// TransitionPayment returns next when the edge is legal.
func TransitionPayment(current, next PaymentStatus) (PaymentStatus, error) {
	if !current.CanTransitionTo(next) {
		return current, domainErrors.NewPaymentTransitionError(current.String(), next.String())
	}
	return next, nil
}

func (p *Payment) OwnedBy(merchantID int64) bool {
	return p.MerchantID == merchantID
}

// WithStatus returns a copy of the payment moved to the given status.
// Refunds also record the refund reason and time.
func (p Payment) WithStatus(status PaymentStatus, at time.Time) *Payment {
	p.Status = status
	p.UpdatedAt = at
	if status == PaymentStatusRefunded {
		p.RefundReason = DefaultRefundReason
		refundedAt := at
		p.RefundedAt = &refundedAt
	}
	return &p
}

// ValidatePaymentAmount accepts positive amounts with at most 6 integer and 2 fraction digits.
func ValidatePaymentAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainErrors.NewInvalidFieldError("amount", "Amount must be greater than 0")
	}
	if !amount.Equal(amount.Truncate(MaxAmountFractionDigits)) {
		return domainErrors.NewInvalidFieldError("amount", "Amount must have at most 2 decimal places")
	}
	if amount.GreaterThanOrEqual(decimal.New(1, MaxAmountIntegerDigits)) {
		return domainErrors.NewInvalidFieldError("amount", "Amount must have at most 6 integer digits")
	}
	return nil
}

func ValidateCurrency(currency string) error {
	if !currencyPattern.MatchString(currency) {
		return domainErrors.NewInvalidFieldError("currency", "Currency must be a 3-letter uppercase code")
	}
	return nil
}
