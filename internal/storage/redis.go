package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the blob under a single redis key with no expiry.
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot wraps client. The slot owns the client and closes it.
func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{client: client, key: key}
}

func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.redisKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.redisKey(), err)
	}
	return data, nil
}

func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.redisKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.redisKey(), err)
	}
	return nil
}

func (s *RedisSlot) Close() error {
	return s.client.Close()
}

func (s *RedisSlot) Describe() string {
	return fmt.Sprintf("redis://%s/%s", s.client.Options().Addr, s.redisKey())
}

func (s *RedisSlot) redisKey() string {
	return "signdeck:" + s.key
}
