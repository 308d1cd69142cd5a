package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// CreatePaymentInput carries a new payment for the authenticated merchant
type CreatePaymentInput struct {
	MerchantID  int64
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// PaymentUseCase manages the payment lifecycle with ownership checks
type PaymentUseCase interface {
	Create(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error)
	Get(ctx context.Context, paymentID, merchantID int64) (*entity.Payment, error)
	List(ctx context.Context, merchantID int64, params entity.PaginationParams) (*entity.PaginatedPayments, error)
	UpdateStatus(ctx context.Context, paymentID, merchantID int64, status entity.PaymentStatus) (*entity.Payment, error)
	Refund(ctx context.Context, paymentID, merchantID int64) (*entity.Payment, error)
}
