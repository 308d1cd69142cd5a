package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	domainErrors "github.com/wekeepgrowing/merchant-gateway/internal/domain/errors"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// PaymentService is the payment ledger. Every mutation is written together
// with its audit record in one transaction.
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	merchantRepo repository.MerchantRepository
	transactor   repository.Transactor
	audit        interfaces.AuditTrail
	publisher    PaymentEventPublisher
	recorder     TransitionRecorder
	logger       *zap.Logger
}

// NewPaymentService creates a new payment service. publisher and recorder may be nil.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	merchantRepo repository.MerchantRepository,
	transactor repository.Transactor,
	audit interfaces.AuditTrail,
	publisher PaymentEventPublisher,
	recorder TransitionRecorder,
	logger *zap.Logger,
) *PaymentService {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &PaymentService{
		paymentRepo:  paymentRepo,
		merchantRepo: merchantRepo,
		transactor:   transactor,
		audit:        audit,
		publisher:    publisher,
		recorder:     recorder,
		logger:       logger,
	}
}

var _ interfaces.PaymentUseCase = (*PaymentService)(nil)

func (s *PaymentService) Create(ctx context.Context, input interfaces.CreatePaymentInput) (*entity.Payment, error) {
	if err := entity.ValidatePaymentAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := entity.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(input.Description) > entity.MaxDescriptionLength {
		return nil, domainErrors.NewInvalidFieldError("description", "Description must not exceed 500 characters")
	}

	merchant, err := s.merchantRepo.FindByID(ctx, input.MerchantID)
	if err != nil {
		return nil, wrapInternal(err, "failed to load merchant")
	}
	if merchant == nil {
		return nil, domainErrors.NewMerchantNotFoundError(input.MerchantID)
	}

	payment := &entity.Payment{
		MerchantID:  input.MerchantID,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Description: input.Description,
		Status:      entity.PaymentStatusPending,
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}
		_, err := s.audit.LogCreate(ctx, payment)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to create payment",
			zap.Int64("merchant_id", input.MerchantID),
			zap.Error(err))
		return nil, wrapInternal(err, "failed to create payment")
	}

	s.logger.Info("Payment created",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("merchant_id", payment.MerchantID),
		zap.String("amount", payment.Amount.String()),
		zap.String("currency", payment.Currency))

	s.committed(ctx, payment, "")
	return payment, nil
}

// Get checks existence before ownership, so a foreign payment is Forbidden and a missing one NotFound.
func (s *PaymentService) Get(ctx context.Context, paymentID, merchantID int64) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, wrapInternal(err, "failed to load payment")
	}
	if payment == nil {
		return nil, domainErrors.NewPaymentNotFoundError(paymentID)
	}
	if !payment.OwnedBy(merchantID) {
		s.logger.Warn("Payment access denied",
			zap.Int64("payment_id", paymentID),
			zap.Int64("merchant_id", merchantID))
		return nil, domainErrors.NewPaymentAccessDeniedError()
	}
	return payment, nil
}

func (s *PaymentService) List(ctx context.Context, merchantID int64, params entity.PaginationParams) (*entity.PaginatedPayments, error) {
	params.Normalize()

	payments, total, err := s.paymentRepo.ListByMerchant(ctx, merchantID, params.Limit, params.Offset())
	if err != nil {
		return nil, wrapInternal(err, "failed to list payments")
	}

	return &entity.PaginatedPayments{
		Data:       payments,
		Pagination: entity.NewPaginationMeta(params.Page, params.Limit, total),
	}, nil
}

func (s *PaymentService) UpdateStatus(ctx context.Context, paymentID, merchantID int64, status entity.PaymentStatus) (*entity.Payment, error) {
	if !status.IsValid() {
		return nil, domainErrors.NewInvalidFieldError("status", fmt.Sprintf("Invalid payment status: %s", status))
	}

	current, err := s.Get(ctx, paymentID, merchantID)
	if err != nil {
		return nil, err
	}
	if _, err := entity.TransitionPayment(current.Status, status); err != nil {
		s.logger.Warn("Invalid payment status transition",
			zap.Int64("payment_id", paymentID),
			zap.String("from", current.Status.String()),
			zap.String("to", status.String()))
		return nil, err
	}

	var (
		updated  *entity.Payment
		previous entity.PaymentStatus
	)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := s.paymentRepo.FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domainErrors.NewPaymentNotFoundError(paymentID)
		}

		// the status may have moved since the unlocked read
		next, err := entity.TransitionPayment(locked.Status, status)
		if err != nil {
			return err
		}

		previous = locked.Status
		updated = locked.WithStatus(next, time.Now())
		if err := s.paymentRepo.UpdateStatus(ctx, updated); err != nil {
			return err
		}

		if entity.ActionFor(next) == entity.TransactionActionRefund {
			_, err = s.audit.LogRefund(ctx, updated, updated.RefundReason)
		} else {
			_, err = s.audit.LogStatusUpdate(ctx, updated, previous, next)
		}
		return err
	})
	if err != nil {
		return nil, wrapInternal(err, "failed to update payment status")
	}

	s.logger.Info("Payment status updated",
		zap.Int64("payment_id", paymentID),
		zap.String("from", previous.String()),
		zap.String("to", updated.Status.String()))

	s.committed(ctx, updated, previous)
	return updated, nil
}

// Refund only succeeds from SUCCESS.
func (s *PaymentService) Refund(ctx context.Context, paymentID, merchantID int64) (*entity.Payment, error) {
	return s.UpdateStatus(ctx, paymentID, merchantID, entity.PaymentStatusRefunded)
}

// committed runs the best-effort side effects of a committed mutation
func (s *PaymentService) committed(ctx context.Context, payment *entity.Payment, previous entity.PaymentStatus) {
	s.recorder.Record(metricEntityPayment, previous.String(), payment.Status.String())

	event := entity.NewPaymentEvent(payment, previous)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish payment event",
			zap.String("event_id", event.EventID),
			zap.String("type", string(event.Type)),
			zap.Int64("payment_id", payment.ID),
			zap.Error(err))
	}
}
