package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

func toPaymentModel(p *entity.Payment) *model.Payment {
	return &model.Payment{
		ID:           p.ID,
		MerchantID:   p.MerchantID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Description:  optionalString(p.Description),
		Status:       p.Status.String(),
		RefundReason: optionalString(p.RefundReason),
		RefundedAt:   p.RefundedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPaymentEntity(p *model.Payment) *entity.Payment {
	return &entity.Payment{
		ID:           p.ID,
		MerchantID:   p.MerchantID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Description:  stringValue(p.Description),
		Status:       entity.PaymentStatus(p.Status),
		RefundReason: stringValue(p.RefundReason),
		RefundedAt:   p.RefundedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	row := toPaymentModel(payment)

	if err := conn(ctx, r.db).Create(row).Error; err != nil {
		r.logger.Error("Failed to create payment",
			zap.Int64("merchant_id", payment.MerchantID),
			zap.String("amount", payment.Amount.String()),
			zap.Error(err))
		return fmt.Errorf("failed to create payment: %w", err)
	}

	payment.ID = row.ID
	payment.CreatedAt = row.CreatedAt
	payment.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	return r.find(conn(ctx, r.db), id)
}

func (r *paymentRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Payment, error) {
	return r.find(conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *paymentRepository) find(db *gorm.DB, id int64) (*entity.Payment, error) {
	var payment model.Payment

	if err := db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	return toPaymentEntity(&payment), nil
}

func (r *paymentRepository) ListByMerchant(ctx context.Context, merchantID int64, limit, offset int) ([]*entity.Payment, int64, error) {
	var (
		rows  []*model.Payment
		total int64
	)

	db := conn(ctx, r.db)

	if err := db.Model(&model.Payment{}).Where("merchant_id = ?", merchantID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	err := db.Where("merchant_id = ?", merchantID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		r.logger.Error("Failed to list payments",
			zap.Int64("merchant_id", merchantID),
			zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]*entity.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, toPaymentEntity(row))
	}
	return payments, total, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, payment *entity.Payment) error {
	result := conn(ctx, r.db).
		Model(&model.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"status":        payment.Status.String(),
			"refund_reason": optionalString(payment.RefundReason),
			"refunded_at":   payment.RefundedAt,
			"updated_at":    payment.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update payment status",
			zap.Int64("payment_id", payment.ID),
			zap.String("status", payment.Status.String()),
			zap.Error(result.Error))
		return fmt.Errorf("failed to update payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update payment status: %w", gorm.ErrRecordNotFound)
	}

	return nil
}
