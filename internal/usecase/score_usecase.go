package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/errors"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/utils"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
	"go.uber.org/zap"
)

// ScoreCachePrefix keys cached area scores; invalidated wholesale after
// every spot mutation.
const ScoreCachePrefix = "score:"

// Fixed score weighting. The three terms sum to 100 at their caps; keep
// these in sync with ComputeScore.
const (
	pointsPerSpot = 5
	quantityCap   = 40
	qualityCap    = 30.0
	pointsPerType = 5
	maxScore      = 100
)

type ScoreUseCase struct {
	store     *store.SpotStore
	proximity *ProximityUseCase
	cache     repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewScoreUseCase(
	store *store.SpotStore,
	proximity *ProximityUseCase,
	cache repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ScoreUseCase {
	return &ScoreUseCase{
		store:     store,
		proximity: proximity,
		cache:     cache,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// ComputeScore maps a set of nearby spots to the 0-100 area score.
// Weighting is fixed for compatibility with existing clients:
//   - quantity: 5 points per spot, capped at 40 (saturates at 8 spots)
//   - quality:  fraction of working spots scaled to 30, unrounded
//   - variety:  5 points per distinct type, 30 at full coverage
//
// The sum is truncated once and clamped to 100. Empty input scores 0.
func (uc *ScoreUseCase) ComputeScore(nearby []domain.NearbySpot) int {
	if len(nearby) == 0 {
		return 0
	}

	totalSpots := len(nearby)
	workingSpots := 0
	types := make(map[domain.SpotType]struct{})
	for _, n := range nearby {
		if n.Spot.Status == domain.StatusWorking {
			workingSpots++
		}
		types[n.Spot.Type] = struct{}{}
	}

	quantityScore := float64(totalSpots * pointsPerSpot)
	if quantityScore > quantityCap {
		quantityScore = quantityCap
	}
	qualityScore := float64(workingSpots) / float64(totalSpots) * qualityCap
	varietyScore := float64(len(types) * pointsPerType)

	total := int(math.Floor(quantityScore + qualityScore + varietyScore))
	if total > maxScore {
		total = maxScore
	}
	return total
}

// AreaScore answers the score display contract: proximity query, then the
// score engine, behind a short-lived cache.
func (uc *ScoreUseCase) AreaScore(
	ctx context.Context,
	req dto.AreaScoreRequest,
) (*dto.AreaScoreResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadiusMeters(req.RadiusM) {
		return nil, errors.ErrInvalidRadius
	}

	key := fmt.Sprintf("%s%.6f:%.6f:%.0f", ScoreCachePrefix, req.Lat, req.Lon, req.RadiusM)

	if cached, err := uc.cache.Get(ctx, key); err == nil && cached != nil {
		var resp dto.AreaScoreResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			uc.logger.Debug("Area score served from cache", zap.String("key", key))
			return &resp, nil
		}
	}

	nearby := uc.proximity.Near(
		domain.Coordinate{Lat: req.Lat, Lon: req.Lon},
		req.RadiusM,
		uc.store.All(),
	)

	workingSpots := 0
	types := make(map[domain.SpotType]struct{})
	for _, n := range nearby {
		if n.Spot.Status == domain.StatusWorking {
			workingSpots++
		}
		types[n.Spot.Type] = struct{}{}
	}

	resp := &dto.AreaScoreResponse{
		Score:        uc.ComputeScore(nearby),
		TotalSpots:   len(nearby),
		WorkingSpots: workingSpots,
		UniqueTypes:  len(types),
		RadiusM:      req.RadiusM,
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache area score", zap.String("key", key), zap.Error(err))
		}
	}

	return resp, nil
}
