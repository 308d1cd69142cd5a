package interfaces

import (
	"context"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// AuditTrail records payment lifecycle events. Writes join the
// transaction carried by ctx when there is one.
type AuditTrail interface {
	LogCreate(ctx context.Context, payment *entity.Payment) (*entity.Transaction, error)
	LogStatusUpdate(ctx context.Context, payment *entity.Payment, previous, next entity.PaymentStatus) (*entity.Transaction, error)
	LogRefund(ctx context.Context, payment *entity.Payment, reason string) (*entity.Transaction, error)
	ListForPayment(ctx context.Context, paymentID int64) ([]*entity.Transaction, error)
	ListForMerchant(ctx context.Context, merchantID int64) ([]*entity.Transaction, error)
}
