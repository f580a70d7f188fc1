package store

import (
	"context"
	"sync"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"go.uber.org/zap"
)

// SpotStore owns the authoritative in-memory spot collection for the
// session. All mutation is serialized behind one mutex; reads hand out
// copies so query code never observes a half-applied change.
//
// Every mutation triggers a synchronous wholesale snapshot through the
// injected persistence port. Snapshot failures are logged and swallowed:
// responsiveness is preferred over durability here, at the cost of silent
// data loss when the backend is down.
type SpotStore struct {
	mu        sync.Mutex
	spots     []domain.Spot
	snapshots repository.SnapshotRepository
	logger    *zap.Logger
}

func New(snapshots repository.SnapshotRepository, logger *zap.Logger) *SpotStore {
	return &SpotStore{
		spots:     make([]domain.Spot, 0),
		snapshots: snapshots,
		logger:    logger,
	}
}

// Restore loads the persisted snapshot into the store. Records that fail
// to parse are skipped individually; only a backend failure is returned.
func (s *SpotStore) Restore(ctx context.Context) error {
	data, err := s.snapshots.Load(ctx)
	if err != nil {
		return err
	}

	spots, skipped, err := domain.DecodeSpots(data)
	if err != nil {
		return err
	}
	if skipped > 0 {
		s.logger.Warn("Skipped malformed spot records in snapshot",
			zap.Int("skipped", skipped),
			zap.Int("loaded", len(spots)))
	}

	s.mu.Lock()
	s.spots = spots
	s.mu.Unlock()

	return nil
}

// Add appends a spot. No uniqueness check against titles or coordinates
// happens here; dedup is the caller's job (reconciler, submission flow).
func (s *SpotStore) Add(ctx context.Context, spot domain.Spot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.spots = append(s.spots, spot)
	s.persistLocked(ctx)
}

// Remove drops the spot with the given id and reports whether anything
// changed. A missing id is not an error.
func (s *SpotStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, spot := range s.spots {
		if spot.ID == id {
			s.spots = append(s.spots[:i], s.spots[i+1:]...)
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// Update replaces the entry whose id matches spot.ID, keeping the original
// CreatedAt. Reports whether a matching entry existed.
func (s *SpotStore) Update(ctx context.Context, spot domain.Spot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.spots {
		if existing.ID == spot.ID {
			spot.CreatedAt = existing.CreatedAt
			s.spots[i] = spot
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// Get looks up a spot by id.
func (s *SpotStore) Get(id string) (domain.Spot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, spot := range s.spots {
		if spot.ID == id {
			return spot, true
		}
	}
	return domain.Spot{}, false
}

// All returns a copy of the current collection in insertion order.
func (s *SpotStore) All() []domain.Spot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Spot, len(s.spots))
	copy(out, s.spots)
	return out
}

// Len returns the number of spots currently held.
func (s *SpotStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.spots)
}

// persistLocked writes the whole collection through the snapshot port.
// Must be called with s.mu held. Failures are logged, never surfaced.
func (s *SpotStore) persistLocked(ctx context.Context) {
	data, err := domain.EncodeSpots(s.spots)
	if err != nil {
		s.logger.Error("Failed to encode spot snapshot", zap.Error(err))
		return
	}

	if err := s.snapshots.Save(ctx, data); err != nil {
		s.logger.Error("Failed to persist spot snapshot",
			zap.Int("spots", len(s.spots)),
			zap.Error(err))
	}
}
