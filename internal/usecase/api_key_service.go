package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/service"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// APIKeyScheme is the Authorization header scheme for merchant API keys
const APIKeyScheme = "ApiKey "

// APIKeyService authenticates API keys and manages a merchant's keys
type APIKeyService struct {
	apiKeyRepo   repository.APIKeyRepository
	merchantRepo repository.MerchantRepository
	keyGenerator service.APIKeyGenerator
	logger       *zap.Logger
}

// NewAPIKeyService creates a new API key service
func NewAPIKeyService(
	apiKeyRepo repository.APIKeyRepository,
	merchantRepo repository.MerchantRepository,
	keyGenerator service.APIKeyGenerator,
	logger *zap.Logger,
) *APIKeyService {
	return &APIKeyService{
		apiKeyRepo:   apiKeyRepo,
		merchantRepo: merchantRepo,
		keyGenerator: keyGenerator,
		logger:       logger,
	}
}

var _ interfaces.APIKeyUseCase = (*APIKeyService)(nil)

func (s *APIKeyService) ExtractAPIKey(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", domainErrors.NewMissingAuthorizationHeaderError()
	}
	if !strings.HasPrefix(header, APIKeyScheme) {
		return "", domainErrors.NewInvalidAuthorizationFormatError()
	}

	key := header[len(APIKeyScheme):]
	if strings.TrimSpace(key) == "" {
		return "", domainErrors.NewEmptyAPIKeyError()
	}
	return key, nil
}

// Validate checks, in order: blank key, unknown digest, revoked key, unapproved merchant.
func (s *APIKeyService) Validate(ctx context.Context, plainKey string) (*entity.Merchant, error) {
	if strings.TrimSpace(plainKey) == "" {
		return nil, domainErrors.NewInvalidAPIKeyError()
	}

	digest, err := s.keyGenerator.Digest(plainKey)
	if err != nil {
		return nil, wrapInternal(err, "failed to digest api key")
	}

	key, err := s.apiKeyRepo.FindByHash(ctx, digest)
	if err != nil {
		return nil, wrapInternal(err, "failed to look up api key")
	}
	if key == nil {
		s.logger.Warn("API key validation failed: unknown key")
		return nil, domainErrors.NewInvalidAPIKeyError()
	}

	if key.Revoked {
		s.logger.Warn("API key validation failed: key revoked", zap.Int64("key_id", key.ID))
		return nil, domainErrors.NewRevokedAPIKeyError()
	}

	merchant, err := s.merchantRepo.FindByID(ctx, key.MerchantID)
	if err != nil {
		return nil, wrapInternal(err, "failed to load merchant")
	}
	if merchant == nil {
		return nil, domainErrors.NewInvalidAPIKeyError()
	}
	if !merchant.IsApproved() {
		s.logger.Warn("API key validation failed: merchant not approved",
			zap.Int64("merchant_id", merchant.ID),
			zap.String("status", merchant.Status.String()))
		return nil, domainErrors.NewMerchantNotApprovedError()
	}

	// best effort: a failed touch never rejects the request
	if err := s.apiKeyRepo.TouchLastUsed(ctx, key.ID, time.Now()); err != nil {
		s.logger.Warn("Failed to update API key last used time",
			zap.Int64("key_id", key.ID),
			zap.Error(err))
	}

	return merchant, nil
}

func (s *APIKeyService) Authenticate(ctx context.Context, header string) (*entity.Merchant, error) {
	plainKey, err := s.ExtractAPIKey(header)
	if err != nil {
		return nil, err
	}
	return s.Validate(ctx, plainKey)
}

func (s *APIKeyService) GenerateAdditionalKey(ctx context.Context, merchantID int64, label string) (*entity.IssuedAPIKey, error) {
	merchant, err := s.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		return nil, wrapInternal(err, "failed to load merchant")
	}
	if merchant == nil {
		return nil, domainErrors.NewMerchantNotFoundError(merchantID)
	}
	if !merchant.IsApproved() {
		return nil, domainErrors.NewKeyGenerationNotAllowedError()
	}

	plainKey, err := s.keyGenerator.Generate()
	if err != nil {
		return nil, wrapInternal(err, "failed to generate api key")
	}
	digest, err := s.keyGenerator.Digest(plainKey)
	if err != nil {
		return nil, wrapInternal(err, "failed to digest api key")
	}

	key := &entity.APIKey{
		MerchantID: merchantID,
		KeyHash:    digest,
		Label:      label,
	}
	if err := s.apiKeyRepo.Create(ctx, key); err != nil {
		return nil, wrapInternal(err, "failed to store api key")
	}

	s.logger.Info("Generated API key",
		zap.Int64("key_id", key.ID),
		zap.Int64("merchant_id", merchantID))

	return &entity.IssuedAPIKey{Key: key, PlainKey: plainKey}, nil
}

func (s *APIKeyService) Revoke(ctx context.Context, merchantID, keyID int64) error {
	key, err := s.apiKeyRepo.FindByID(ctx, keyID)
	if err != nil {
		return wrapInternal(err, "failed to load api key")
	}
	if key == nil {
		return domainErrors.NewAPIKeyNotFoundError(keyID)
	}
	if !key.OwnedBy(merchantID) {
		s.logger.Warn("API key revocation denied",
			zap.Int64("key_id", keyID),
			zap.Int64("merchant_id", merchantID))
		return domainErrors.NewRevokeForbiddenError()
	}
	if key.Revoked {
		return nil
	}

	if err := s.apiKeyRepo.Revoke(ctx, keyID); err != nil {
		return wrapInternal(err, "failed to revoke api key")
	}

	s.logger.Info("Revoked API key",
		zap.Int64("key_id", keyID),
		zap.Int64("merchant_id", merchantID))
	return nil
}

func (s *APIKeyService) ListKeys(ctx context.Context, merchantID int64) ([]*entity.APIKey, error) {
	keys, err := s.apiKeyRepo.ListByMerchant(ctx, merchantID, false)
	if err != nil {
		return nil, wrapInternal(err, "failed to list api keys")
	}
	return keys, nil
}

func (s *APIKeyService) ListActiveKeys(ctx context.Context, merchantID int64) ([]*entity.APIKey, error) {
	keys, err := s.apiKeyRepo.ListByMerchant(ctx, merchantID, true)
	if err != nil {
		return nil, wrapInternal(err, "failed to list api keys")
	}
	return keys, nil
}
