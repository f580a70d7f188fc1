package usecase

import (
	"context"
	"time"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/errors"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/utils"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SpotUseCase owns the spot lifecycle: user submissions, updates, removal
// and votes. Every successful mutation is announced on the change stream.
type SpotUseCase struct {
	store  *store.SpotStore
	stream repository.StreamRepository
	logger *zap.Logger
}

func NewSpotUseCase(
	store *store.SpotStore,
	stream repository.StreamRepository,
	logger *zap.Logger,
) *SpotUseCase {
	return &SpotUseCase{
		store:  store,
		stream: stream,
		logger: logger,
	}
}

// Create admits a user-submitted spot. The id is assigned here and never
// changes afterwards.
func (uc *SpotUseCase) Create(ctx context.Context, req dto.CreateSpotRequest) (*domain.Spot, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	spotType, err := domain.ParseSpotType(req.Type)
	if err != nil {
		return nil, errors.ErrInvalidSpotType
	}
	status, err := domain.ParseSpotStatus(req.Status)
	if err != nil {
		return nil, errors.ErrInvalidSpotStatus
	}

	spot := domain.Spot{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Type:        spotType,
		Status:      status,
		Lat:         req.Lat,
		Lon:         req.Lon,
		PhotoRef:    req.PhotoRef,
		CreatedAt:   time.Now().UTC(),
	}

	uc.store.Add(ctx, spot)
	uc.publish(ctx, domain.SpotCreated, &spot)

	uc.logger.Info("Spot created",
		zap.String("id", spot.ID),
		zap.String("type", string(spot.Type)))

	return &spot, nil
}

// List returns the whole collection.
func (uc *SpotUseCase) List(ctx context.Context) []domain.Spot {
	return uc.store.All()
}

// Get returns one spot by id.
func (uc *SpotUseCase) Get(ctx context.Context, id string) (*domain.Spot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidSpotID
	}

	spot, ok := uc.store.Get(id)
	if !ok {
		return nil, errors.ErrSpotNotFound
	}
	return &spot, nil
}

// Update replaces the spot's mutable state. Vote counters and the
// creation timestamp survive the replacement.
func (uc *SpotUseCase) Update(ctx context.Context, id string, req dto.UpdateSpotRequest) (*domain.Spot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidSpotID
	}
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	spotType, err := domain.ParseSpotType(req.Type)
	if err != nil {
		return nil, errors.ErrInvalidSpotType
	}
	status, err := domain.ParseSpotStatus(req.Status)
	if err != nil {
		return nil, errors.ErrInvalidSpotStatus
	}

	existing, ok := uc.store.Get(id)
	if !ok {
		return nil, errors.ErrSpotNotFound
	}

	spot := domain.Spot{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Type:        spotType,
		Status:      status,
		Lat:         req.Lat,
		Lon:         req.Lon,
		PhotoRef:    req.PhotoRef,
		Upvotes:     existing.Upvotes,
		Downvotes:   existing.Downvotes,
		CreatedAt:   existing.CreatedAt,
	}

	if !uc.store.Update(ctx, spot) {
		// Raced with a concurrent delete.
		return nil, errors.ErrSpotNotFound
	}
	uc.publish(ctx, domain.SpotUpdated, &spot)

	return &spot, nil
}

// Delete removes a spot by id.
func (uc *SpotUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.ErrInvalidSpotID
	}

	if !uc.store.Remove(ctx, id) {
		return errors.ErrSpotNotFound
	}
	uc.publish(ctx, domain.SpotDeleted, nil, id)

	uc.logger.Info("Spot deleted", zap.String("id", id))
	return nil
}

// Upvote increments the spot's upvote counter.
func (uc *SpotUseCase) Upvote(ctx context.Context, id string) (*domain.Spot, error) {
	return uc.vote(ctx, id, func(s *domain.Spot) { s.Upvotes++ })
}

// Downvote increments the spot's downvote counter.
func (uc *SpotUseCase) Downvote(ctx context.Context, id string) (*domain.Spot, error) {
	return uc.vote(ctx, id, func(s *domain.Spot) { s.Downvotes++ })
}

func (uc *SpotUseCase) vote(ctx context.Context, id string, apply func(*domain.Spot)) (*domain.Spot, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrInvalidSpotID
	}

	spot, ok := uc.store.Get(id)
	if !ok {
		return nil, errors.ErrSpotNotFound
	}

	apply(&spot)
	if !uc.store.Update(ctx, spot) {
		return nil, errors.ErrSpotNotFound
	}
	uc.publish(ctx, domain.SpotVoted, &spot)

	return &spot, nil
}

// publish announces a mutation on the change stream. Stream failures are
// logged, never surfaced: the store already committed.
func (uc *SpotUseCase) publish(ctx context.Context, action domain.SpotEventAction, spot *domain.Spot, ids ...string) {
	event := domain.SpotEvent{
		Action: action,
		Spot:   spot,
		At:     time.Now().UTC(),
	}
	if spot != nil {
		event.SpotID = spot.ID
	} else if len(ids) > 0 {
		event.SpotID = ids[0]
	}

	if err := uc.stream.PublishToStream(ctx, domain.SpotChangeStream, event); err != nil {
		uc.logger.Warn("Failed to publish spot event",
			zap.String("action", string(action)),
			zap.String("spot_id", event.SpotID),
			zap.Error(err))
	}
}
