package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// DeletePrefix walks the keyspace with SCAN and drops every key under the
// prefix. Used for score invalidation after spot mutations.
func (r *cacheRepository) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	var cursor uint64
	deleted := 0

	for {
		keys, next, err := r.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			r.logger.Error("Failed to scan cache keys", zap.String("prefix", prefix), zap.Error(err))
			return deleted, fmt.Errorf("cache scan error: %w", err)
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				r.logger.Error("Failed to delete cache keys", zap.String("prefix", prefix), zap.Error(err))
				return deleted, fmt.Errorf("cache delete error: %w", err)
			}
			deleted += len(keys)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	if deleted > 0 {
		r.logger.Debug("Cache prefix invalidated",
			zap.String("prefix", prefix),
			zap.Int("deleted", deleted))
	}
	return deleted, nil
}
