package repository

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// transactionRepository only inserts and reads audit records
type transactionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTransactionRepository creates a new audit transaction repository instance
func NewTransactionRepository(db *gorm.DB, logger *zap.Logger) domainRepo.TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func statusPtr(s *string) *entity.PaymentStatus {
	if s == nil {
		return nil
	}
	status := entity.PaymentStatus(*s)
	return &status
}

func statusString(s *entity.PaymentStatus) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}

func toTransactionModel(t *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:             t.ID,
		PaymentID:      t.PaymentID,
		Action:         string(t.Action),
		PreviousStatus: statusString(t.PreviousStatus),
		NewStatus:      statusString(t.NewStatus),
		Notes:          optionalString(t.Notes),
		CreatedAt:      t.CreatedAt,
	}
}

func toTransactionEntity(t *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:             t.ID,
		PaymentID:      t.PaymentID,
		Action:         entity.TransactionAction(t.Action),
		PreviousStatus: statusPtr(t.PreviousStatus),
		NewStatus:      statusPtr(t.NewStatus),
		Notes:          stringValue(t.Notes),
		CreatedAt:      t.CreatedAt,
	}
}

func toTransactionEntities(rows []*model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, toTransactionEntity(row))
	}
	return transactions
}

func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	row := toTransactionModel(transaction)

	if err := conn(ctx, r.db).Create(row).Error; err != nil {
		r.logger.Error("Failed to create audit transaction",
			zap.Int64("payment_id", transaction.PaymentID),
			zap.String("action", string(transaction.Action)),
			zap.Error(err))
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	transaction.ID = row.ID
	transaction.CreatedAt = row.CreatedAt
	return nil
}

func (r *transactionRepository) ListByPayment(ctx context.Context, paymentID int64) ([]*entity.Transaction, error) {
	var rows []*model.Transaction

	err := conn(ctx, r.db).
		Where("payment_id = ?", paymentID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for payment: %w", err)
	}

	return toTransactionEntities(rows), nil
}

func (r *transactionRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]*entity.Transaction, error) {
	var rows []*model.Transaction

	err := conn(ctx, r.db).
		Joins("JOIN payments ON payments.id = transactions.payment_id").
		Where("payments.merchant_id = ?", merchantID).
		Order("transactions.created_at DESC, transactions.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for merchant: %w", err)
	}

	return toTransactionEntities(rows), nil
}
