package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"go.uber.org/zap"
)

const statsCacheKey = "stats:current"

type StatsUseCase struct {
	store    *store.SpotStore
	cache    repository.CacheRepository
	logger   *zap.Logger
	cacheTTL time.Duration
}

func NewStatsUseCase(
	store *store.SpotStore,
	cache repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		store:    store,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// GetStatistics summarizes the current collection, behind a short cache.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	if cached, err := uc.cache.Get(ctx, statsCacheKey); err == nil && cached != nil {
		var stats domain.Statistics
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	spots := uc.store.All()

	stats := &domain.Statistics{
		TotalSpots:  len(spots),
		ByType:      make(map[domain.SpotType]int),
		ByStatus:    make(map[domain.SpotStatus]int),
		LastUpdated: time.Now().UTC(),
	}

	working := 0
	for i, spot := range spots {
		stats.ByType[spot.Type]++
		stats.ByStatus[spot.Status]++
		if spot.Status == domain.StatusWorking {
			working++
		}

		if i == 0 {
			stats.Coverage = &domain.BoundingBox{
				MinLat: spot.Lat, MaxLat: spot.Lat,
				MinLon: spot.Lon, MaxLon: spot.Lon,
			}
			continue
		}
		if spot.Lat < stats.Coverage.MinLat {
			stats.Coverage.MinLat = spot.Lat
		}
		if spot.Lat > stats.Coverage.MaxLat {
			stats.Coverage.MaxLat = spot.Lat
		}
		if spot.Lon < stats.Coverage.MinLon {
			stats.Coverage.MinLon = spot.Lon
		}
		if spot.Lon > stats.Coverage.MaxLon {
			stats.Coverage.MaxLon = spot.Lon
		}
	}

	if len(spots) > 0 {
		stats.WorkingShare = float64(working) / float64(len(spots))
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := uc.cache.Set(ctx, statsCacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache statistics", zap.Error(err))
		}
	}

	return stats, nil
}
