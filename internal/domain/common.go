package domain

import "time"

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Statistics summarizes the current spot collection.
type Statistics struct {
	TotalSpots   int                `json:"total_spots"`
	ByType       map[SpotType]int   `json:"by_type"`
	ByStatus     map[SpotStatus]int `json:"by_status"`
	WorkingShare float64            `json:"working_share"`
	Coverage     *BoundingBox       `json:"coverage,omitempty"`
	LastUpdated  time.Time          `json:"last_updated"`
}
