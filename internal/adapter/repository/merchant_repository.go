package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type merchantRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMerchantRepository creates a new merchant repository instance
func NewMerchantRepository(db *gorm.DB, logger *zap.Logger) domainRepo.MerchantRepository {
	return &merchantRepository{
		db:     db,
		logger: logger,
	}
}

func toMerchantModel(m *entity.Merchant) *model.Merchant {
	return &model.Merchant{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Status:        m.Status.String(),
		StatusReason:  optionalString(m.StatusReason),
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toMerchantEntity(m *model.Merchant) *entity.Merchant {
	return &entity.Merchant{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		Status:        entity.MerchantStatus(m.Status),
		StatusReason:  stringValue(m.StatusReason),
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *merchantRepository) FindByID(ctx context.Context, id int64) (*entity.Merchant, error) {
	var merchant model.Merchant

	if err := conn(ctx, r.db).First(&merchant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find merchant: %w", err)
	}

	return toMerchantEntity(&merchant), nil
}

func (r *merchantRepository) FindByEmail(ctx context.Context, email string) (*entity.Merchant, error) {
	var merchant model.Merchant

	if err := conn(ctx, r.db).Where("email = ?", email).First(&merchant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find merchant by email: %w", err)
	}

	return toMerchantEntity(&merchant), nil
}

func (r *merchantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	err := conn(ctx, r.db).
		Model(&model.Merchant{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check merchant email: %w", err)
	}

	return count > 0, nil
}

func (r *merchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	row := toMerchantModel(merchant)

	if err := conn(ctx, r.db).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainErrors.NewEmailAlreadyRegisteredError(err)
		}
		r.logger.Error("Failed to create merchant", zap.Error(err))
		return fmt.Errorf("failed to create merchant: %w", err)
	}

	merchant.ID = row.ID
	merchant.CreatedAt = row.CreatedAt
	merchant.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *merchantRepository) UpdateStatus(ctx context.Context, merchant *entity.Merchant, from entity.MerchantStatus) (bool, error) {
	result := conn(ctx, r.db).
		Model(&model.Merchant{}).
		Where("id = ? AND status = ?", merchant.ID, from.String()).
		Updates(map[string]interface{}{
			"status":        merchant.Status.String(),
			"status_reason": optionalString(merchant.StatusReason),
			"updated_at":    merchant.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update merchant status",
			zap.Int64("merchant_id", merchant.ID),
			zap.String("status", merchant.Status.String()),
			zap.Error(result.Error))
		return false, fmt.Errorf("failed to update merchant status: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
