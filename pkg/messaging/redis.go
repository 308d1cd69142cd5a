package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisConfig Redis 연결 설정
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// redisPublisher Redis pub/sub 기반 Publisher
type redisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher Redis 클라이언트를 생성하고 연결을 확인합니다
func NewRedisPublisher(ctx context.Context, cfg RedisConfig) (Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Redis 연결 테스트
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	return &redisPublisher{client: client}, nil
}

// Publish 메시지 발행
func (r *redisPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	payload, err := encode(message)
	if err != nil {
		return err
	}

	if err := r.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("Redis 발행 실패: %w", err)
	}
	return nil
}

// Close Redis 클라이언트 종료
func (r *redisPublisher) Close() error {
	return r.client.Close()
}
