package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/errors"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
)

func newSpotUseCase(stream *MockStreamRepository) (*usecase.SpotUseCase, *store.SpotStore) {
	st := newTestStore()
	return usecase.NewSpotUseCase(st, stream, zap.NewNop()), st
}

func validCreateRequest() dto.CreateSpotRequest {
	return dto.CreateSpotRequest{
		Title:  "Metro elevator",
		Type:   "elevator",
		Status: "working",
		Lat:    37.9838,
		Lon:    23.7275,
	}
}

func TestSpotUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and timestamp, publishes event", func(t *testing.T) {
		stream := &MockStreamRepository{}
		uc, st := newSpotUseCase(stream)

		stream.On("PublishToStream", ctx, domain.SpotChangeStream, mock.MatchedBy(func(e domain.SpotEvent) bool {
			return e.Action == domain.SpotCreated && e.Spot != nil
		})).Return(nil)

		spot, err := uc.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		_, uuidErr := uuid.Parse(spot.ID)
		assert.NoError(t, uuidErr)
		assert.False(t, spot.CreatedAt.IsZero())
		assert.Equal(t, domain.TypeElevator, spot.Type)
		assert.Equal(t, 1, st.Len())

		stream.AssertExpectations(t)
	})

	t.Run("unknown type is a hard failure", func(t *testing.T) {
		uc, st := newSpotUseCase(&MockStreamRepository{})

		req := validCreateRequest()
		req.Type = "escalator"

		_, err := uc.Create(ctx, req)
		assert.Equal(t, errors.ErrInvalidSpotType, err)
		assert.Equal(t, 0, st.Len())
	})

	t.Run("unknown status is a hard failure", func(t *testing.T) {
		uc, st := newSpotUseCase(&MockStreamRepository{})

		req := validCreateRequest()
		req.Status = "kaput"

		_, err := uc.Create(ctx, req)
		assert.Equal(t, errors.ErrInvalidSpotStatus, err)
		assert.Equal(t, 0, st.Len())
	})

	t.Run("out-of-range coordinates rejected", func(t *testing.T) {
		uc, _ := newSpotUseCase(&MockStreamRepository{})

		req := validCreateRequest()
		req.Lon = 181

		_, err := uc.Create(ctx, req)
		assert.Equal(t, errors.ErrInvalidCoordinates, err)
	})

	t.Run("stream failure does not fail the create", func(t *testing.T) {
		stream := &MockStreamRepository{}
		uc, st := newSpotUseCase(stream)

		stream.On("PublishToStream", ctx, domain.SpotChangeStream, mock.Anything).Return(assert.AnError)

		_, err := uc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, st.Len())
	})
}

func TestSpotUseCase_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, uc *usecase.SpotUseCase, stream *MockStreamRepository) *domain.Spot {
		stream.On("PublishToStream", ctx, domain.SpotChangeStream, mock.Anything).Return(nil)
		spot, err := uc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		return spot
	}

	t.Run("update keeps votes and created_at", func(t *testing.T) {
		stream := &MockStreamRepository{}
		uc, st := newSpotUseCase(stream)
		spot := seed(t, uc, stream)

		// Simulate existing votes.
		voted, _ := st.Get(spot.ID)
		voted.Upvotes = 7
		st.Update(ctx, voted)

		updated, err := uc.Update(ctx, spot.ID, dto.UpdateSpotRequest{
			Title:  "Metro elevator (east exit)",
			Type:   "elevator",
			Status: "under_maintenance",
			Lat:    spot.Lat,
			Lon:    spot.Lon,
		})

		require.NoError(t, err)
		assert.Equal(t, "Metro elevator (east exit)", updated.Title)
		assert.Equal(t, domain.StatusUnderMaintenance, updated.Status)
		assert.Equal(t, 7, updated.Upvotes)
		assert.Equal(t, spot.CreatedAt, updated.CreatedAt)
	})

	t.Run("update of unknown id reports not found", func(t *testing.T) {
		uc, _ := newSpotUseCase(&MockStreamRepository{})

		_, err := uc.Update(ctx, uuid.NewString(), dto.UpdateSpotRequest{
			Title: "x", Type: "ramp", Status: "working",
		})
		assert.Equal(t, errors.ErrSpotNotFound, err)
	})

	t.Run("delete removes and publishes", func(t *testing.T) {
		stream := &MockStreamRepository{}
		uc, st := newSpotUseCase(stream)
		spot := seed(t, uc, stream)

		require.NoError(t, uc.Delete(ctx, spot.ID))
		assert.Equal(t, 0, st.Len())
	})

	t.Run("delete of unknown id reports not found", func(t *testing.T) {
		uc, _ := newSpotUseCase(&MockStreamRepository{})
		assert.Equal(t, errors.ErrSpotNotFound, uc.Delete(ctx, uuid.NewString()))
	})

	t.Run("malformed id is rejected before lookup", func(t *testing.T) {
		uc, _ := newSpotUseCase(&MockStreamRepository{})
		assert.Equal(t, errors.ErrInvalidSpotID, uc.Delete(ctx, "not-a-uuid"))
	})
}

func TestSpotUseCase_Votes(t *testing.T) {
	ctx := context.Background()
	stream := &MockStreamRepository{}
	uc, _ := newSpotUseCase(stream)

	stream.On("PublishToStream", ctx, domain.SpotChangeStream, mock.Anything).Return(nil)

	spot, err := uc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	t.Run("upvote and downvote accumulate", func(t *testing.T) {
		_, err := uc.Upvote(ctx, spot.ID)
		require.NoError(t, err)
		_, err = uc.Upvote(ctx, spot.ID)
		require.NoError(t, err)
		got, err := uc.Downvote(ctx, spot.ID)
		require.NoError(t, err)

		assert.Equal(t, 2, got.Upvotes)
		assert.Equal(t, 1, got.Downvotes)
	})

	t.Run("vote on unknown id reports not found", func(t *testing.T) {
		_, err := uc.Upvote(ctx, uuid.NewString())
		assert.Equal(t, errors.ErrSpotNotFound, err)
	})
}
