package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSQSClient struct {
	mock.Mock
}

func (m *MockSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.SendMessageOutput), args.Error(1)
}

func TestSQSPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	queueURL := "https://sqs.ap-northeast-2.amazonaws.com/123456789012/payments"

	t.Run("sends JSON body with channel attribute", func(t *testing.T) {
		client := new(MockSQSClient)
		client.On("SendMessage", ctx, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
			return aws.ToString(in.QueueUrl) == queueURL &&
				aws.ToString(in.MessageBody) == `{"paymentId":42}` &&
				aws.ToString(in.MessageAttributes[ChannelAttribute].StringValue) == "payments.events"
		})).Return(&sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil)

		p := newSQSPublisher(client, queueURL)
		err := p.Publish(ctx, "payments.events", map[string]int{"paymentId": 42})

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("wraps send failure", func(t *testing.T) {
		client := new(MockSQSClient)
		client.On("SendMessage", ctx, mock.Anything).Return(nil, errors.New("throttled"))

		err := newSQSPublisher(client, queueURL).Publish(ctx, "payments.events", "x")

		assert.ErrorContains(t, err, "throttled")
	})

	t.Run("unserializable message never reaches the queue", func(t *testing.T) {
		client := new(MockSQSClient)

		err := newSQSPublisher(client, queueURL).Publish(ctx, "payments.events", func() {})

		assert.Error(t, err)
		client.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
	})
}

func TestNewSQSPublisher_RequiresQueueURL(t *testing.T) {
	_, err := NewSQSPublisher(context.Background(), SQSConfig{Region: "ap-northeast-2"})
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "c", struct{}{}))
	assert.NoError(t, p.Close())
}
