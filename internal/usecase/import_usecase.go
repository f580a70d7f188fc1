package usecase

import (
	"context"
	"time"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/classify"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/errors"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/utils"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportUseCase pulls raw tagged elements from the external geodata
// source, classifies them and merges them into the store, suppressing
// near-duplicates by coordinate.
type ImportUseCase struct {
	store       *store.SpotStore
	geodata     repository.GeodataRepository
	classifier  *classify.Classifier
	dedupRadius float64
	logger      *zap.Logger
}

func NewImportUseCase(
	store *store.SpotStore,
	geodata repository.GeodataRepository,
	classifier *classify.Classifier,
	dedupRadiusM float64,
	logger *zap.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		store:       store,
		geodata:     geodata,
		classifier:  classifier,
		dedupRadius: dedupRadiusM,
		logger:      logger,
	}
}

// Run fetches elements around the center and reconciles them into the
// store. A fetch failure leaves the store untouched.
func (uc *ImportUseCase) Run(ctx context.Context, req dto.ImportRequest) (*dto.ImportResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadiusMeters(req.RadiusM) {
		return nil, errors.ErrInvalidRadius
	}

	center := domain.Coordinate{Lat: req.Lat, Lon: req.Lon}

	elements, err := uc.geodata.FetchByRadius(ctx, center, req.RadiusM)
	if err != nil {
		uc.logger.Error("Geodata fetch failed",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Float64("radius_m", req.RadiusM),
			zap.Error(err))
		return nil, errors.ErrImportFailed
	}

	candidates := make([]domain.Spot, 0, len(elements))
	for _, el := range elements {
		spotType := uc.classifier.Classify(el.Tags)
		candidates = append(candidates, domain.Spot{
			ID:        uuid.NewString(),
			Title:     classify.Title(el.Tags, spotType),
			Type:      spotType,
			Status:    domain.StatusWorking, // the source has no working/broken concept
			Lat:       el.Lat,
			Lon:       el.Lon,
			CreatedAt: time.Now().UTC(),
		})
	}

	added := uc.Reconcile(ctx, candidates)

	uc.logger.Info("Geodata import finished",
		zap.Int("fetched", len(elements)),
		zap.Int("added", len(added)),
		zap.Int("suppressed", len(candidates)-len(added)))

	return &dto.ImportResponse{
		Fetched:    len(elements),
		Added:      len(added),
		Suppressed: len(candidates) - len(added),
		Spots:      added,
	}, nil
}

// Reconcile adds each incoming candidate unless the store already holds a
// spot within the dedup radius of its coordinate. Matching is coordinate
// only: two genuinely distinct features closer than the radius collapse to
// one. That trade-off is deliberate; title and type are not compared.
// Incoming order is preserved in the additions.
func (uc *ImportUseCase) Reconcile(ctx context.Context, incoming []domain.Spot) []domain.Spot {
	added := make([]domain.Spot, 0, len(incoming))

	for _, candidate := range incoming {
		// Re-read the store each round so candidates admitted earlier in
		// this batch also suppress their own near-duplicates.
		if uc.hasNearDuplicate(candidate) {
			continue
		}
		uc.store.Add(ctx, candidate)
		added = append(added, candidate)
	}

	return added
}

func (uc *ImportUseCase) hasNearDuplicate(candidate domain.Spot) bool {
	for _, existing := range uc.store.All() {
		d := utils.HaversineDistanceMeters(candidate.Lat, candidate.Lon, existing.Lat, existing.Lon)
		if d <= uc.dedupRadius {
			return true
		}
	}
	return false
}
