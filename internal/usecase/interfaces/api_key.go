package interfaces

import (
	"context"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// APIKeyUseCase authenticates requests and manages a merchant's keys
type APIKeyUseCase interface {
	// ExtractAPIKey parses an "ApiKey <key>" Authorization header value
	ExtractAPIKey(header string) (string, error)
	// Validate resolves a plain key to its approved merchant
	Validate(ctx context.Context, plainKey string) (*entity.Merchant, error)
	// Authenticate combines ExtractAPIKey and Validate
	Authenticate(ctx context.Context, header string) (*entity.Merchant, error)
	GenerateAdditionalKey(ctx context.Context, merchantID int64, label string) (*entity.IssuedAPIKey, error)
	// Revoke is a no-op for an already revoked key
	Revoke(ctx context.Context, merchantID, keyID int64) error
	ListKeys(ctx context.Context, merchantID int64) ([]*entity.APIKey, error)
	ListActiveKeys(ctx context.Context, merchantID int64) ([]*entity.APIKey, error)
}
