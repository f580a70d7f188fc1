package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/classify"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/config"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/worker/importer"
)

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

type nopSnapshotRepo struct{}

func (nopSnapshotRepo) Save(context.Context, []byte) error   { return nil }
func (nopSnapshotRepo) Load(context.Context) ([]byte, error) { return nil, nil }

func newTestImportUseCase(geodata *MockGeodataRepository) (*usecase.ImportUseCase, *store.SpotStore) {
	spotStore := store.New(nopSnapshotRepo{}, zap.NewNop())
	uc := usecase.NewImportUseCase(spotStore, geodata, classify.New(), 10, zap.NewNop())
	return uc, spotStore
}

func TestImportWorker_Name(t *testing.T) {
	uc, _ := newTestImportUseCase(&MockGeodataRepository{})
	w := importer.NewImportWorker(uc, nil, time.Minute, zap.NewNop())

	assert.Equal(t, "geodata-import", w.Name())
}

func TestImportWorker_FirstCycleRunsImmediately(t *testing.T) {
	mockGeodata := &MockGeodataRepository{}
	mockGeodata.On("FetchByRadius", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.RawElement{
			{ID: 1, Lat: 37.9715, Lon: 23.7267, Tags: map[string]string{"highway": "elevator"}},
		}, nil)

	uc, spotStore := newTestImportUseCase(mockGeodata)
	areas := []config.ImportArea{{Lat: 37.9715, Lon: 23.7267, RadiusM: 500}}
	w := importer.NewImportWorker(uc, areas, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	// The first cycle runs before the ticker, well within this window.
	assert.Eventually(t, func() bool {
		return spotStore.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop")
	}

	mockGeodata.AssertExpectations(t)
}

func TestImportWorker_FailedAreaDoesNotBlockOthers(t *testing.T) {
	mockGeodata := &MockGeodataRepository{}
	mockGeodata.On("FetchByRadius", mock.Anything, domain.Coordinate{Lat: 1, Lon: 1}, 500.0).
		Return(nil, assert.AnError)
	mockGeodata.On("FetchByRadius", mock.Anything, domain.Coordinate{Lat: 2, Lon: 2}, 500.0).
		Return([]domain.RawElement{
			{ID: 2, Lat: 2, Lon: 2, Tags: map[string]string{"ramp": "yes"}},
		}, nil)

	uc, spotStore := newTestImportUseCase(mockGeodata)
	areas := []config.ImportArea{
		{Lat: 1, Lon: 1, RadiusM: 500},
		{Lat: 2, Lon: 2, RadiusM: 500},
	}
	w := importer.NewImportWorker(uc, areas, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	assert.Eventually(t, func() bool {
		return spotStore.Len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Stop())
	<-done

	spots := spotStore.All()
	require.Len(t, spots, 1)
	assert.Equal(t, domain.TypeRamp, spots[0].Type)

	mockGeodata.AssertExpectations(t)
}

func TestImportWorker_ContextCancellationStopsWorker(t *testing.T) {
	uc, _ := newTestImportUseCase(&MockGeodataRepository{})
	w := importer.NewImportWorker(uc, nil, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop on context cancellation")
	}
}
