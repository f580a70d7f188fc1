package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"go.uber.org/zap"
)

type snapshotRepository struct {
	path   string
	logger *zap.Logger
}

// NewSnapshotRepository persists the spot blob to a single file on disk.
// This is the default backend: no external service required.
func NewSnapshotRepository(path string, logger *zap.Logger) repository.SnapshotRepository {
	return &snapshotRepository{
		path:   path,
		logger: logger,
	}
}

// Save writes the blob through a temp file and rename, so a crash mid-write
// never leaves a truncated snapshot behind.
func (r *snapshotRepository) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	r.logger.Debug("Snapshot written", zap.String("path", r.path), zap.Int("bytes", len(data)))
	return nil
}

func (r *snapshotRepository) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return data, nil
}
