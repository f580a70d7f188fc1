package repository

import (
	"context"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
)

// StreamRepository is the spot-change feed: mutations are published here
// and listeners consume them through a consumer group.
type StreamRepository interface {
	PublishToStream(ctx context.Context, stream string, data interface{}) error
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
