package repository

import (
	"context"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID returns (nil, nil) when the payment does not exist
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)

	// FindByIDForUpdate locks the payment row until the surrounding transaction ends
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Payment, error)

	// ListByMerchant returns one page of payments newest first and the total count
	ListByMerchant(ctx context.Context, merchantID int64, limit, offset int) ([]*entity.Payment, int64, error)

	// UpdateStatus persists status, refund fields and updated_at
	UpdateStatus(ctx context.Context, payment *entity.Payment) error
}
