package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wekeepgrowing/merchant-gateway/internal/config"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
	"go.uber.org/zap"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	args := m.Called(ctx, channel, message)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

func testEvent() *entity.PaymentEvent {
	return entity.NewPaymentEvent(&entity.Payment{
		ID:         7,
		MerchantID: 1,
		Amount:     decimal.RequireFromString("49.99"),
		Currency:   "USD",
		Status:     entity.PaymentStatusSuccess,
		UpdatedAt:  time.Now(),
	}, entity.PaymentStatusPending)
}

func TestPaymentEventPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	event := testEvent()

	t.Run("publishes on the configured channel", func(t *testing.T) {
		broker := new(MockPublisher)
		broker.On("Publish", ctx, "payments.events", event).Return(nil)
		publisher := NewPaymentEventPublisherWith(broker, "payments.events", zap.NewNop())

		require.NoError(t, publisher.Publish(ctx, event))
		broker.AssertExpectations(t)
	})

	t.Run("wraps broker failures", func(t *testing.T) {
		broker := new(MockPublisher)
		broker.On("Publish", ctx, "payments.events", event).Return(errors.New("connection refused"))
		publisher := NewPaymentEventPublisherWith(broker, "payments.events", zap.NewNop())

		err := publisher.Publish(ctx, event)
		assert.ErrorContains(t, err, "failed to publish payment.status_updated event")
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestNewPaymentEventPublisher_Drivers(t *testing.T) {
	ctx := context.Background()

	publisher, err := NewPaymentEventPublisher(ctx, config.EventsConfig{Driver: config.EventsDriverNone, Channel: "payments.events"}, zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, publisher.Publish(ctx, testEvent()))
	assert.NoError(t, publisher.Close())

	_, err = NewPaymentEventPublisher(ctx, config.EventsConfig{Driver: "kafka"}, zap.NewNop())
	assert.ErrorContains(t, err, `unknown events driver: "kafka"`)

	_, err = NewPaymentEventPublisher(ctx, config.EventsConfig{Driver: config.EventsDriverSQS}, zap.NewNop())
	assert.ErrorContains(t, err, "failed to create sqs event publisher")
}
