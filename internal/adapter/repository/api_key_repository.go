package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/merchant-gateway/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type apiKeyRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAPIKeyRepository creates a new API key repository instance
func NewAPIKeyRepository(db *gorm.DB, logger *zap.Logger) domainRepo.APIKeyRepository {
	return &apiKeyRepository{
		db:     db,
		logger: logger,
	}
}

func toAPIKeyModel(k *entity.APIKey) *model.APIKey {
	return &model.APIKey{
		ID:         k.ID,
		MerchantID: k.MerchantID,
		KeyHash:    k.KeyHash,
		Label:      k.Label,
		Revoked:    k.Revoked,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
	}
}

func toAPIKeyEntity(k *model.APIKey) *entity.APIKey {
	return &entity.APIKey{
		ID:         k.ID,
		MerchantID: k.MerchantID,
		KeyHash:    k.KeyHash,
		Label:      k.Label,
		Revoked:    k.Revoked,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
	}
}

func (r *apiKeyRepository) Create(ctx context.Context, key *entity.APIKey) error {
	row := toAPIKeyModel(key)

	if err := conn(ctx, r.db).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewAppError(apperrors.ErrConflict, "API key already exists", err)
		}
		r.logger.Error("Failed to create API key",
			zap.Int64("merchant_id", key.MerchantID),
			zap.Error(err))
		return fmt.Errorf("failed to create api key: %w", err)
	}

	key.ID = row.ID
	key.CreatedAt = row.CreatedAt
	return nil
}

func (r *apiKeyRepository) FindByHash(ctx context.Context, keyHash string) (*entity.APIKey, error) {
	var key model.APIKey

	if err := conn(ctx, r.db).Where("key_hash = ?", keyHash).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find api key: %w", err)
	}

	return toAPIKeyEntity(&key), nil
}

func (r *apiKeyRepository) FindByID(ctx context.Context, id int64) (*entity.APIKey, error) {
	var key model.APIKey

	if err := conn(ctx, r.db).First(&key, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find api key: %w", err)
	}

	return toAPIKeyEntity(&key), nil
}

func (r *apiKeyRepository) ListByMerchant(ctx context.Context, merchantID int64, activeOnly bool) ([]*entity.APIKey, error) {
	var rows []*model.APIKey

	query := conn(ctx, r.db).Where("merchant_id = ?", merchantID)
	if activeOnly {
		query = query.Where("revoked = ?", false)
	}

	if err := query.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		r.logger.Error("Failed to list API keys",
			zap.Int64("merchant_id", merchantID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	keys := make([]*entity.APIKey, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, toAPIKeyEntity(row))
	}
	return keys, nil
}

func (r *apiKeyRepository) Revoke(ctx context.Context, id int64) error {
	err := conn(ctx, r.db).
		Model(&model.APIKey{}).
		Where("id = ?", id).
		Update("revoked", true).Error
	if err != nil {
		return fmt.Errorf("failed to revoke api key: %w", err)
	}
	return nil
}

func (r *apiKeyRepository) TouchLastUsed(ctx context.Context, id int64, at time.Time) error {
	err := conn(ctx, r.db).
		Model(&model.APIKey{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to update api key last used: %w", err)
	}
	return nil
}
