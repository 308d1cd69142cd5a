package repository

import (
	"context"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// MerchantRepository defines persistence operations for merchants.
// Lookups return (nil, nil) when no merchant matches.
type MerchantRepository interface {
	// FindByID retrieves a merchant by its ID
	FindByID(ctx context.Context, id int64) (*entity.Merchant, error)

	// FindByEmail retrieves a merchant by its email
	FindByEmail(ctx context.Context, email string) (*entity.Merchant, error)

	// ExistsByEmail reports whether a merchant with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts the merchant and fills its ID and timestamps.
	// A duplicate email is reported as a conflict error.
	Create(ctx context.Context, merchant *entity.Merchant) error

	// UpdateStatus persists status, status reason and updated_at only while the
	// stored status still equals from. It reports false when no row matched.
	UpdateStatus(ctx context.Context, merchant *entity.Merchant, from entity.MerchantStatus) (bool, error)
}
