package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("summarizes the collection on cache miss", func(t *testing.T) {
		spotStore := newTestStore()
		spotStore.Add(ctx, testSpot("a", domain.TypeRamp, domain.StatusWorking, 37.97, 23.72))
		spotStore.Add(ctx, testSpot("b", domain.TypeRamp, domain.StatusNotWorking, 37.98, 23.73))
		spotStore.Add(ctx, testSpot("c", domain.TypeElevator, domain.StatusWorking, 37.96, 23.74))

		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "stats:current").Return(nil, nil)
		mockCache.On("Set", mock.Anything, "stats:current", mock.Anything, 5*time.Minute).Return(nil)

		uc := usecase.NewStatsUseCase(spotStore, mockCache, zap.NewNop(), 5*time.Minute)

		stats, err := uc.GetStatistics(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalSpots)
		assert.Equal(t, 2, stats.ByType[domain.TypeRamp])
		assert.Equal(t, 1, stats.ByType[domain.TypeElevator])
		assert.Equal(t, 2, stats.ByStatus[domain.StatusWorking])
		assert.Equal(t, 1, stats.ByStatus[domain.StatusNotWorking])
		assert.InDelta(t, 2.0/3.0, stats.WorkingShare, 1e-9)

		require.NotNil(t, stats.Coverage)
		assert.Equal(t, 37.96, stats.Coverage.MinLat)
		assert.Equal(t, 37.98, stats.Coverage.MaxLat)
		assert.Equal(t, 23.72, stats.Coverage.MinLon)
		assert.Equal(t, 23.74, stats.Coverage.MaxLon)

		mockCache.AssertExpectations(t)
	})

	t.Run("empty collection has zero stats and no coverage", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "stats:current").Return(nil, nil)
		mockCache.On("Set", mock.Anything, "stats:current", mock.Anything, mock.Anything).Return(nil)

		uc := usecase.NewStatsUseCase(newTestStore(), mockCache, zap.NewNop(), time.Minute)

		stats, err := uc.GetStatistics(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0, stats.TotalSpots)
		assert.Zero(t, stats.WorkingShare)
		assert.Nil(t, stats.Coverage)
	})

	t.Run("cache hit skips recomputation", func(t *testing.T) {
		cached := &domain.Statistics{
			TotalSpots:   42,
			ByType:       map[domain.SpotType]int{domain.TypeRamp: 42},
			ByStatus:     map[domain.SpotStatus]int{domain.StatusWorking: 42},
			WorkingShare: 1,
		}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "stats:current").Return(data, nil)

		// Empty store: a recomputation would report zero spots.
		uc := usecase.NewStatsUseCase(newTestStore(), mockCache, zap.NewNop(), time.Minute)

		stats, err := uc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 42, stats.TotalSpots)

		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache write failure does not fail the request", func(t *testing.T) {
		spotStore := newTestStore()
		spotStore.Add(ctx, testSpot("a", domain.TypeRamp, domain.StatusWorking, 37.97, 23.72))

		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "stats:current").Return(nil, nil)
		mockCache.On("Set", mock.Anything, "stats:current", mock.Anything, mock.Anything).Return(assert.AnError)

		uc := usecase.NewStatsUseCase(spotStore, mockCache, zap.NewNop(), time.Minute)

		stats, err := uc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalSpots)
	})
}
