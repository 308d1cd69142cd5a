package usecase

import (
	"context"

	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// Entity names used for transition metrics
const (
	metricEntityMerchant = "merchant"
	metricEntityPayment  = "payment"
)

// PaymentEventPublisher delivers payment events after the mutation commits
type PaymentEventPublisher interface {
	Publish(ctx context.Context, event *entity.PaymentEvent) error
}

// TransitionRecorder counts committed state transitions
type TransitionRecorder interface {
	Record(entity, from, to string)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, *entity.PaymentEvent) error {
	return nil
}

type nopRecorder struct{}

func (nopRecorder) Record(string, string, string) {}
