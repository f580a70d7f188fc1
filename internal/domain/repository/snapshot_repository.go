package repository

import "context"

// SnapshotRepository persists the entire spot collection as one blob under
// a fixed name, overwritten wholesale on every save. Backends (file,
// redis, postgres) are interchangeable behind this port.
type SnapshotRepository interface {
	// Save overwrites the snapshot blob.
	Save(ctx context.Context, data []byte) error

	// Load returns the current snapshot blob, or (nil, nil) when no
	// snapshot has been written yet.
	Load(ctx context.Context) ([]byte, error)
}
