package blob

import (
	"context"
	"errors"
	"fmt"

	"postdeck/internal/observability"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection blob as one Redis string value.
type RedisStore struct {
	rdb     *redis.Client
	prefix  string
	metrics *observability.StoreMetrics
}

// NewRedisStore returns a store backed by the given Redis client. All keys
// are namespaced under prefix.
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, metrics: observability.NewStoreMetrics("redis")}
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Get fetches the blob stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "get", key)
	defer span.End()
	defer s.metrics.TrackOperation("get", key)()

	data, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		s.metrics.RecordError("get")
		span.RecordError(err)
		return nil, fmt.Errorf("blob: redis get %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the blob stored under key. Blobs are durable records, not
// cache entries, so no TTL is applied.
func (s *RedisStore) Set(ctx context.Context, key string, data []byte) error {
	ctx, span := observability.TraceStoreOperation(ctx, "set", key)
	defer span.End()
	defer s.metrics.TrackOperation("set", key)()

	if err := s.rdb.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		s.metrics.RecordError("set")
		span.RecordError(err)
		return fmt.Errorf("blob: redis set %s: %w", key, err)
	}
	return nil
}
