package usecase

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/repository"
	"github.com/wekeepgrowing/merchant-gateway/internal/usecase/interfaces"
	"go.uber.org/zap"
)

// TransactionService is the append-only audit trail of payment lifecycle events
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *zap.Logger
}

// NewTransactionService creates a new audit trail service
func NewTransactionService(transactionRepo repository.TransactionRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

var _ interfaces.AuditTrail = (*TransactionService)(nil)

func (s *TransactionService) LogCreate(ctx context.Context, payment *entity.Payment) (*entity.Transaction, error) {
	return s.append(ctx, entity.NewCreateTransaction(payment))
}

func (s *TransactionService) LogStatusUpdate(ctx context.Context, payment *entity.Payment, previous, next entity.PaymentStatus) (*entity.Transaction, error) {
	return s.append(ctx, entity.NewStatusUpdateTransaction(payment, previous, next))
}

func (s *TransactionService) LogRefund(ctx context.Context, payment *entity.Payment, reason string) (*entity.Transaction, error) {
	return s.append(ctx, entity.NewRefundTransaction(payment, reason))
}

func (s *TransactionService) append(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record %s transaction: %w", transaction.Action, err)
	}

	s.logger.Debug("Recorded payment transaction",
		zap.Int64("payment_id", transaction.PaymentID),
		zap.String("action", string(transaction.Action)))
	return transaction, nil
}

func (s *TransactionService) ListForPayment(ctx context.Context, paymentID int64) ([]*entity.Transaction, error) {
	transactions, err := s.transactionRepo.ListByPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment transactions: %w", err)
	}
	return transactions, nil
}

func (s *TransactionService) ListForMerchant(ctx context.Context, merchantID int64) ([]*entity.Transaction, error) {
	transactions, err := s.transactionRepo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list merchant transactions: %w", err)
	}
	return transactions, nil
}
