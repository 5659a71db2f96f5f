package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces planner collections inside a shared Redis.
const redisKeyPrefix = "planner:"

// RedisStore persists collections as JSON documents in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance described by redisURL
// (e.g. "redis://localhost:6379/0").
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Load returns the stored document for key, or (nil, nil) when absent.
func (s *RedisStore) Load(ctx context.Context, key Key) ([]byte, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+string(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", key, err)
	}
	return data, nil
}

// Save replaces the stored document for key. Documents do not expire.
func (s *RedisStore) Save(ctx context.Context, key Key, data []byte) error {
	if err := s.client.Set(ctx, redisKeyPrefix+string(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save collection %q: %w", key, err)
	}
	return nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
