package messaging

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// ChannelAttribute SQS 메시지에 채널 이름을 담는 속성 키
const ChannelAttribute = "channel"

// SQSConfig SQS 연결 설정
type SQSConfig struct {
	Region          string
	QueueURL        string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint 로컬 스택 등 사용자 지정 엔드포인트 (선택)
	Endpoint string
}

// sqsAPI 테스트를 위해 필요한 SQS 메서드만 정의합니다
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// sqsPublisher SQS 큐 기반 Publisher
type sqsPublisher struct {
	client   sqsAPI
	queueURL string
}

// NewSQSPublisher SQS 클라이언트를 생성합니다
// 정적 키가 없으면 기본 자격 증명 체인을 사용합니다
func NewSQSPublisher(ctx context.Context, cfg SQSConfig) (Publisher, error) {
	if cfg.QueueURL == "" {
		return nil, fmt.Errorf("SQS 큐 URL이 필요합니다")
	}

	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("AWS 설정 로드 실패: %w", err)
	}

	client := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newSQSPublisher(client, cfg.QueueURL), nil
}

func newSQSPublisher(client sqsAPI, queueURL string) *sqsPublisher {
	return &sqsPublisher{client: client, queueURL: queueURL}
}

// Publish 메시지를 큐에 전송합니다. 채널 이름은 메시지 속성으로 전달됩니다
func (p *sqsPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := encode(message)
	if err != nil {
		return err
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			ChannelAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(channel),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SQS 전송 실패: %w", err)
	}
	return nil
}

// Close SQS 클라이언트는 별도 종료가 필요 없습니다
func (p *sqsPublisher) Close() error {
	return nil
}
