package repository

import (
	"context"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
)

// GeodataRepository queries the external point-of-interest service for raw
// tagged elements around a center. The fetch is network-bound and must
// honor context cancellation.
type GeodataRepository interface {
	FetchByRadius(ctx context.Context, center domain.Coordinate, radiusM float64) ([]domain.RawElement, error)
}
