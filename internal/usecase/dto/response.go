package dto

import "github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"

// NearbySpot - one proximity query hit, distance attached.
type NearbySpot struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Type      domain.SpotType   `json:"type"`
	Status    domain.SpotStatus `json:"status"`
	Lat       float64           `json:"lat"`
	Lon       float64           `json:"lon"`
	DistanceM float64           `json:"distance_m"`
}

// NearbySpotsResponse - proximity query result, nearest first.
type NearbySpotsResponse struct {
	Spots []NearbySpot `json:"spots"`
	Total int          `json:"total"`
}

// AreaScoreResponse - the 0-100 neighborhood score with its inputs.
type AreaScoreResponse struct {
	Score        int     `json:"score"`
	TotalSpots   int     `json:"total_spots"`
	WorkingSpots int     `json:"working_spots"`
	UniqueTypes  int     `json:"unique_types"`
	RadiusM      float64 `json:"radius_m"`
}

// ImportResponse - outcome of one reconciled geodata import.
type ImportResponse struct {
	Fetched    int           `json:"fetched"`
	Added      int           `json:"added"`
	Suppressed int           `json:"suppressed"`
	Spots      []domain.Spot `json:"spots"`
}
