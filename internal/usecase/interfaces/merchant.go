package interfaces

import (
	"context"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// RegisterMerchantInput carries a merchant registration request
type RegisterMerchantInput struct {
	Name     string
	Email    string
	Password string
}

// MerchantUseCase manages merchant onboarding, login and the approval workflow
type MerchantUseCase interface {
	// Register returns the merchant and its one-time plain API key
	Register(ctx context.Context, input RegisterMerchantInput) (*entity.Merchant, string, error)
	FindByID(ctx context.Context, id int64) (*entity.Merchant, error)
	FindByEmail(ctx context.Context, email string) (*entity.Merchant, error)
	Login(ctx context.Context, email, password string) (*entity.Merchant, error)
	Approve(ctx context.Context, id int64) (*entity.Merchant, error)
	Reject(ctx context.Context, id int64, reason string) (*entity.Merchant, error)
	Suspend(ctx context.Context, id int64, reason string) (*entity.Merchant, error)
}
