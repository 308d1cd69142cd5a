package repository

import (
	"context"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// TransactionRepository is append-only: records are created and read, never changed
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByPayment returns a payment's audit records newest first
	ListByPayment(ctx context.Context, paymentID int64) ([]*entity.Transaction, error)

	// ListByMerchant returns audit records of all the merchant's payments newest first
	ListByMerchant(ctx context.Context, merchantID int64) ([]*entity.Transaction, error)
}
