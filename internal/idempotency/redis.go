package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const keyPrefix = "idempotency:booking:"

// RedisStore serialises concurrent requests that share an idempotency key.
// Without a redis client every Acquire succeeds and the database unique
// index is the only guard.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, logger logger.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisStore{rdb: rdb, ttl: ttl, logger: logger}
}

func (s *RedisStore) Acquire(ctx context.Context, key string) (bool, error) {
	if s.rdb == nil {
		return true, nil
	}

	ok, err := s.rdb.SetNX(ctx, keyPrefix+key, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire idempotency lock: %w", err)
	}
	return ok, nil
}

func (s *RedisStore) Release(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}

	if err := s.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		s.logger.Warn("failed to release idempotency lock",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}
