package usecase

import (
	"context"
	"sort"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/errors"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/utils"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
	"go.uber.org/zap"
)

type ProximityUseCase struct {
	store  *store.SpotStore
	logger *zap.Logger
}

func NewProximityUseCase(
	store *store.SpotStore,
	logger *zap.Logger,
) *ProximityUseCase {
	return &ProximityUseCase{
		store:  store,
		logger: logger,
	}
}

// Near annotates each candidate with its distance to the center, keeps
// those inside the radius and returns them nearest-first. Ties keep
// encounter order (stable sort). Pure read over the given snapshot: the
// underlying store is never touched.
func (uc *ProximityUseCase) Near(
	center domain.Coordinate,
	radiusM float64,
	spots []domain.Spot,
) []domain.NearbySpot {
	nearby := make([]domain.NearbySpot, 0, len(spots))
	for _, spot := range spots {
		d := utils.HaversineDistanceMeters(center.Lat, center.Lon, spot.Lat, spot.Lon)
		if d <= radiusM {
			nearby = append(nearby, domain.NearbySpot{Spot: spot, DistanceMeters: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby
}

// SearchByRadius runs a proximity query over the current store contents.
func (uc *ProximityUseCase) SearchByRadius(
	ctx context.Context,
	req dto.RadiusSpotsRequest,
) (*dto.NearbySpotsResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadiusMeters(req.RadiusM) {
		return nil, errors.ErrInvalidRadius
	}

	nearby := uc.Near(
		domain.Coordinate{Lat: req.Lat, Lon: req.Lon},
		req.RadiusM,
		uc.store.All(),
	)

	result := make([]dto.NearbySpot, 0, len(nearby))
	for _, n := range nearby {
		result = append(result, dto.NearbySpot{
			ID:        n.Spot.ID,
			Title:     n.Spot.Title,
			Type:      n.Spot.Type,
			Status:    n.Spot.Status,
			Lat:       n.Spot.Lat,
			Lon:       n.Spot.Lon,
			DistanceM: n.DistanceMeters,
		})
	}

	return &dto.NearbySpotsResponse{
		Spots: result,
		Total: len(result),
	}, nil
}
