package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// RedisAllocator draws ids from a single INCR counter so several console
// processes sharing one Redis never hand out the same id.
type RedisAllocator struct {
	client *redis.Client
	key    string
}

// NewRedisAllocator seeds key so the first INCR yields start. An existing
// counter is left untouched.
func NewRedisAllocator(ctx context.Context, client *redis.Client, key string, start int64) (*RedisAllocator, error) {
	if client == nil {
		return nil, errors.New("redis client not configured")
	}
	if start < 1 {
		start = 1
	}
	if err := client.SetNX(ctx, key, start-1, 0).Err(); err != nil {
		return nil, fmt.Errorf("seed id counter %s: %w", key, err)
	}
	return &RedisAllocator{client: client, key: key}, nil
}

// Next increments the shared counter.
func (a *RedisAllocator) Next(ctx context.Context, _ domain.EntityKind) (int64, error) {
	id, err := a.client.Incr(ctx, a.key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr id counter %s: %w", a.key, err)
	}
	return id, nil
}
