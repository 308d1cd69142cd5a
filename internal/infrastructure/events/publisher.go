package events

import (
	"context"
	"fmt"

	"github.com/wekeepgrowing/merchant-gateway/internal/config"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	"github.com/wekeepgrowing/merchant-gateway/pkg/messaging"
	"go.uber.org/zap"
)

// PaymentEventPublisher sends payment lifecycle events to the configured broker
type PaymentEventPublisher struct {
	publisher messaging.Publisher
	channel   string
	logger    *zap.Logger
}

// NewPaymentEventPublisher connects to the broker selected by cfg.Driver
func NewPaymentEventPublisher(ctx context.Context, cfg config.EventsConfig, logger *zap.Logger) (*PaymentEventPublisher, error) {
	var (
		publisher messaging.Publisher
		err       error
	)

	switch cfg.Driver {
	case config.EventsDriverNone, "":
		publisher = messaging.NopPublisher{}
	case config.EventsDriverRedis:
		publisher, err = messaging.NewRedisPublisher(ctx, messaging.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case config.EventsDriverSQS:
		publisher, err = messaging.NewSQSPublisher(ctx, messaging.SQSConfig{
			Region:          cfg.SQS.Region,
			QueueURL:        cfg.SQS.QueueURL,
			AccessKeyID:     cfg.SQS.AccessKeyID,
			SecretAccessKey: cfg.SQS.SecretAccessKey,
			Endpoint:        cfg.SQS.Endpoint,
		})
	default:
		return nil, fmt.Errorf("unknown events driver: %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s event publisher: %w", cfg.Driver, err)
	}

	logger.Info("Payment event publisher ready",
		zap.String("driver", cfg.Driver),
		zap.String("channel", cfg.Channel))

	return NewPaymentEventPublisherWith(publisher, cfg.Channel, logger), nil
}

// NewPaymentEventPublisherWith wraps an existing messaging.Publisher
func NewPaymentEventPublisherWith(publisher messaging.Publisher, channel string, logger *zap.Logger) *PaymentEventPublisher {
	return &PaymentEventPublisher{
		publisher: publisher,
		channel:   channel,
		logger:    logger,
	}
}

func (p *PaymentEventPublisher) Publish(ctx context.Context, event *entity.PaymentEvent) error {
	if err := p.publisher.Publish(ctx, p.channel, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	p.logger.Debug("Published payment event",
		zap.String("event_id", event.EventID),
		zap.String("type", string(event.Type)),
		zap.Int64("payment_id", event.PaymentID))
	return nil
}

func (p *PaymentEventPublisher) Close() error {
	return p.publisher.Close()
}
