package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/service"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// MerchantService is the merchant directory: registration, login and the approval workflow
type MerchantService struct {
	merchantRepo repository.MerchantRepository
	apiKeyRepo   repository.APIKeyRepository
	transactor   repository.Transactor
	hasher       service.PasswordHasher
	keyGenerator service.APIKeyGenerator
	recorder     TransitionRecorder
	logger       *zap.Logger
}

// NewMerchantService creates a new merchant service. recorder may be nil.
func NewMerchantService(
	merchantRepo repository.MerchantRepository,
	apiKeyRepo repository.APIKeyRepository,
	transactor repository.Transactor,
	hasher service.PasswordHasher,
	keyGenerator service.APIKeyGenerator,
	recorder TransitionRecorder,
	logger *zap.Logger,
) *MerchantService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &MerchantService{
		merchantRepo: merchantRepo,
		apiKeyRepo:   apiKeyRepo,
		transactor:   transactor,
		hasher:       hasher,
		keyGenerator: keyGenerator,
		recorder:     recorder,
		logger:       logger,
	}
}

var _ interfaces.MerchantUseCase = (*MerchantService)(nil)

// Register stores only digests; the plain key returned here cannot be retrieved again.
func (s *MerchantService) Register(ctx context.Context, input interfaces.RegisterMerchantInput) (*entity.Merchant, string, error) {
	exists, err := s.merchantRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", wrapInternal(err, "failed to check merchant email")
	}
	if exists {
		s.logger.Warn("Registration rejected: email already registered")
		return nil, "", domainErrors.NewEmailAlreadyRegisteredError(nil)
	}

	plainKey, err := s.keyGenerator.Generate()
	if err != nil {
		return nil, "", wrapInternal(err, "failed to generate api key")
	}
	passwordHash, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, "", wrapInternal(err, "failed to hash password")
	}
	keyHash, err := s.keyGenerator.Digest(plainKey)
	if err != nil {
		return nil, "", wrapInternal(err, "failed to digest api key")
	}

	merchant := &entity.Merchant{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  passwordHash,
		Status:        entity.MerchantStatusPending,
		EmailVerified: false,
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.merchantRepo.Create(ctx, merchant); err != nil {
			return err
		}
		return s.apiKeyRepo.Create(ctx, &entity.APIKey{
			MerchantID: merchant.ID,
			KeyHash:    keyHash,
			Label:      entity.DefaultAPIKeyLabel,
		})
	})
	if err != nil {
		return nil, "", wrapInternal(err, "failed to register merchant")
	}

	s.logger.Info("Merchant registered",
		zap.Int64("merchant_id", merchant.ID),
		zap.String("status", merchant.Status.String()))

	s.recorder.Record(metricEntityMerchant, "", merchant.Status.String())
	return merchant, plainKey, nil
}

func (s *MerchantService) FindByID(ctx context.Context, id int64) (*entity.Merchant, error) {
	merchant, err := s.merchantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapInternal(err, "failed to load merchant")
	}
	if merchant == nil {
		return nil, domainErrors.NewMerchantNotFoundError(id)
	}
	return merchant, nil
}

func (s *MerchantService) FindByEmail(ctx context.Context, email string) (*entity.Merchant, error) {
	merchant, err := s.merchantRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, wrapInternal(err, "failed to load merchant")
	}
	if merchant == nil {
		return nil, domainErrors.NewMerchantNotFoundByEmailError(email)
	}
	return merchant, nil
}

// Login fails identically for an unknown email and a wrong password.
func (s *MerchantService) Login(ctx context.Context, email, password string) (*entity.Merchant, error) {
	merchant, err := s.merchantRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, wrapInternal(err, "failed to load merchant")
	}
	if merchant == nil {
		s.logger.Warn("Login failed: unknown email")
		return nil, domainErrors.NewInvalidCredentialsError()
	}

	ok, err := s.hasher.VerifyPassword(password, merchant.PasswordHash)
	if err != nil {
		return nil, wrapInternal(err, "failed to verify password")
	}
	if !ok {
		s.logger.Warn("Login failed: password mismatch", zap.Int64("merchant_id", merchant.ID))
		return nil, domainErrors.NewInvalidCredentialsError()
	}

	return merchant, nil
}

func (s *MerchantService) Approve(ctx context.Context, id int64) (*entity.Merchant, error) {
	return s.transition(ctx, id, "", domainErrors.ActionApprove, entity.ApproveMerchant)
}

func (s *MerchantService) Reject(ctx context.Context, id int64, reason string) (*entity.Merchant, error) {
	if err := validateStatusReason(reason); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, reason, domainErrors.ActionReject, entity.RejectMerchant)
}

func (s *MerchantService) Suspend(ctx context.Context, id int64, reason string) (*entity.Merchant, error) {
	if err := validateStatusReason(reason); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, reason, domainErrors.ActionSuspend, entity.SuspendMerchant)
}

func validateStatusReason(reason string) error {
	length := utf8.RuneCountInString(strings.TrimSpace(reason))
	if length < entity.MinStatusReasonLength || length > entity.MaxStatusReasonLength {
		return domainErrors.NewInvalidFieldError("reason",
			fmt.Sprintf("Reason must be between %d and %d characters", entity.MinStatusReasonLength, entity.MaxStatusReasonLength))
	}
	return nil
}

// transition applies next to the stored status and writes the result only if
// the row still holds the status it was read with.
func (s *MerchantService) transition(
	ctx context.Context,
	id int64,
	reason string,
	action string,
	next func(entity.MerchantStatus) (entity.MerchantStatus, error),
) (*entity.Merchant, error) {
	merchant, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := next(merchant.Status)
	if err != nil {
		s.logger.Warn("Invalid merchant status transition",
			zap.Int64("merchant_id", id),
			zap.String("status", merchant.Status.String()),
			zap.Error(err))
		return nil, err
	}

	updated := merchant.WithStatus(status, reason, time.Now())
	ok, err := s.merchantRepo.UpdateStatus(ctx, updated, merchant.Status)
	if err != nil {
		return nil, wrapInternal(err, "failed to update merchant status")
	}
	if !ok {
		// another writer moved the merchant after it was read
		current, err := s.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s.logger.Warn("Merchant status changed concurrently",
			zap.Int64("merchant_id", id),
			zap.String("expected", merchant.Status.String()),
			zap.String("status", current.Status.String()))
		return nil, domainErrors.NewMerchantTransitionError(current.Status.String(), action)
	}

	s.logger.Info("Merchant status changed",
		zap.Int64("merchant_id", id),
		zap.String("from", merchant.Status.String()),
		zap.String("to", status.String()))

	s.recorder.Record(metricEntityMerchant, merchant.Status.String(), status.String())
	return updated, nil
}
