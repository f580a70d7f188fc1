package domain

import "time"

// SpotChangeStream is the stream every spot mutation is published to.
const SpotChangeStream = "spots:changes"

// SpotEventAction enumerates spot-change event kinds.
type SpotEventAction string

const (
	SpotCreated SpotEventAction = "created"
	SpotUpdated SpotEventAction = "updated"
	SpotDeleted SpotEventAction = "deleted"
	SpotVoted   SpotEventAction = "voted"
)

// SpotEvent is published to the change stream after every store mutation,
// so listeners (sync clients, cache invalidation) can follow along.
type SpotEvent struct {
	Action SpotEventAction `json:"action"`
	SpotID string          `json:"spot_id"`
	Spot   *Spot           `json:"spot,omitempty"`
	At     time.Time       `json:"at"`
}

// StreamMessage is a raw message read from the change stream.
type StreamMessage struct {
	ID   string
	Data string
}
