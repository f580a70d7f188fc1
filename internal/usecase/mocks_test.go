package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
)

// metersPerDegreeLat matches the spherical Earth model used by the
// distance function: pi * 6371000 / 180.
const metersPerDegreeLat = 111194.9

// offsetLat shifts a latitude north by roughly the given meters.
func offsetLat(lat, meters float64) float64 {
	return lat + meters/metersPerDegreeLat
}

// nopSnapshotRepo discards snapshots; store tests cover persistence.
type nopSnapshotRepo struct{}

func (nopSnapshotRepo) Save(context.Context, []byte) error   { return nil }
func (nopSnapshotRepo) Load(context.Context) ([]byte, error) { return nil, nil }

func newTestStore() *store.SpotStore {
	return store.New(nopSnapshotRepo{}, zap.NewNop())
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockGeodataRepository is a mock of GeodataRepository
type MockGeodataRepository struct {
	mock.Mock
}

func (m *MockGeodataRepository) FetchByRadius(ctx context.Context, center domain.Coordinate, radiusM float64) ([]domain.RawElement, error) {
	args := m.Called(ctx, center, radiusM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawElement), args.Error(1)
}

func testSpot(id string, t domain.SpotType, st domain.SpotStatus, lat, lon float64) domain.Spot {
	return domain.Spot{
		ID:        id,
		Title:     string(t),
		Type:      t,
		Status:    st,
		Lat:       lat,
		Lon:       lon,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}
