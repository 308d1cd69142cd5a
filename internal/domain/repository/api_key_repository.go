package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// APIKeyRepository defines persistence operations for API key digests
type APIKeyRepository interface {
	// Create inserts the key; a duplicate digest is reported as a conflict error
	Create(ctx context.Context, key *entity.APIKey) error

	// FindByHash retrieves a key by its SHA-256 digest, (nil, nil) when absent
	FindByHash(ctx context.Context, keyHash string) (*entity.APIKey, error)

	// FindByID retrieves a key by its ID, (nil, nil) when absent
	FindByID(ctx context.Context, id int64) (*entity.APIKey, error)

	// ListByMerchant returns a merchant's keys newest first
	ListByMerchant(ctx context.Context, merchantID int64, activeOnly bool) ([]*entity.APIKey, error)

	// Revoke sets the revoked flag
	Revoke(ctx context.Context, id int64) error

	// TouchLastUsed records the time a key last authenticated a request
	TouchLastUsed(ctx context.Context, id int64, at time.Time) error
}
