package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// RedisStore keeps codes in Redis so verification works across service
// replicas. Expiry is delegated to Redis TTLs.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, keyPrefix+phone, code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}
	return nil
}

func (s *RedisStore) Verify(ctx context.Context, phone, code string) (bool, error) {
	key := keyPrefix + phone

	stored, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read otp: %w", err)
	}

	if stored != code {
		return false, nil
	}

	// Single use: best-effort delete, the TTL covers the failure path.
	_ = s.rdb.Del(ctx, key).Err()
	return true, nil
}
