package messaging

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher 메시지 발행 인터페이스
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// encode 메시지를 JSON으로 직렬화합니다
func encode(message interface{}) ([]byte, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("메시지 직렬화 실패: %w", err)
	}
	return payload, nil
}

// NopPublisher 발행을 하지 않는 Publisher
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
