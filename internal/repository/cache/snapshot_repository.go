package cache

import (
	"context"
	"fmt"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type snapshotRepository struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewSnapshotRepository keeps the spot blob under one fixed Redis key,
// overwritten wholesale on every save. No TTL: the snapshot lives until
// the next write.
func NewSnapshotRepository(r *Redis, name string) repository.SnapshotRepository {
	return &snapshotRepository{
		client: r.Client(),
		key:    "snapshot:" + name,
		logger: r.logger,
	}
}

func (r *snapshotRepository) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("Failed to write snapshot to redis", zap.String("key", r.key), zap.Error(err))
		return fmt.Errorf("snapshot save error: %w", err)
	}
	return nil
}

func (r *snapshotRepository) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to read snapshot from redis", zap.String("key", r.key), zap.Error(err))
		return nil, fmt.Errorf("snapshot load error: %w", err)
	}
	return data, nil
}
