package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
)

type snapshotRepository struct {
	db   *DB
	name string
}

// NewSnapshotRepository stores the spot blob in a single row of the
// spot_snapshots table, keyed by snapshot name. Every save replaces
// the previous blob wholesale.
func NewSnapshotRepository(db *DB, name string) repository.SnapshotRepository {
	return &snapshotRepository{
		db:   db,
		name: name,
	}
}

func (r *snapshotRepository) Save(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO spot_snapshots (name, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, r.name, data); err != nil {
		r.db.logger.Error("Failed to write snapshot",
			zap.String("name", r.name),
			zap.Error(err))
		return fmt.Errorf("snapshot save error: %w", err)
	}
	return nil
}

func (r *snapshotRepository) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	query := `SELECT data FROM spot_snapshots WHERE name = $1`

	err := r.db.GetContext(ctx, &data, query, r.name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.db.logger.Error("Failed to read snapshot",
			zap.String("name", r.name),
			zap.Error(err))
		return nil, fmt.Errorf("snapshot load error: %w", err)
	}
	return data, nil
}
