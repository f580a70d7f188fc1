package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// SpotType enumerates the fixed accessibility feature categories.
type SpotType string

const (
	TypeRamp               SpotType = "ramp"
	TypeElevator           SpotType = "elevator"
	TypeAccessibleEntrance SpotType = "accessible_entrance"
	TypeStepFreeRoute      SpotType = "step_free_route"
	TypeAccessibleParking  SpotType = "accessible_parking"
	TypeAccessibleToilet   SpotType = "accessible_toilet"
)

// SpotTypeCount is the size of the SpotType enumeration.
const SpotTypeCount = 6

// AllSpotTypes lists every category, in declaration order.
func AllSpotTypes() []SpotType {
	return []SpotType{
		TypeRamp,
		TypeElevator,
		TypeAccessibleEntrance,
		TypeStepFreeRoute,
		TypeAccessibleParking,
		TypeAccessibleToilet,
	}
}

// ParseSpotType maps a string label to a SpotType. Unknown labels are a
// hard failure, never a silent default.
func ParseSpotType(s string) (SpotType, error) {
	t := SpotType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown spot type %q", s)
	}
	return t, nil
}

func (t SpotType) Valid() bool {
	switch t {
	case TypeRamp, TypeElevator, TypeAccessibleEntrance,
		TypeStepFreeRoute, TypeAccessibleParking, TypeAccessibleToilet:
		return true
	}
	return false
}

func (t *SpotType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSpotType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SpotStatus enumerates the operational state of a feature.
type SpotStatus string

const (
	StatusWorking          SpotStatus = "working"
	StatusNotWorking       SpotStatus = "not_working"
	StatusUnderMaintenance SpotStatus = "under_maintenance"
)

// ParseSpotStatus maps a string label to a SpotStatus. Unknown labels are
// a hard failure, never a silent default.
func ParseSpotStatus(s string) (SpotStatus, error) {
	st := SpotStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown spot status %q", s)
	}
	return st, nil
}

func (s SpotStatus) Valid() bool {
	switch s {
	case StatusWorking, StatusNotWorking, StatusUnderMaintenance:
		return true
	}
	return false
}

func (s *SpotStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseSpotStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Spot is a single recorded accessibility feature at a coordinate.
// Identity and lookup are based on ID only, never on title or coordinate.
type Spot struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        SpotType   `json:"type"`
	Status      SpotStatus `json:"status"`
	Lat         float64    `json:"lat"`
	Lon         float64    `json:"lon"`
	PhotoRef    *string    `json:"photo_ref,omitempty"`
	Upvotes     int        `json:"upvotes"`
	Downvotes   int        `json:"downvotes"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Coordinate returns the spot location as a Coordinate.
func (s Spot) Coordinate() Coordinate {
	return Coordinate{Lat: s.Lat, Lon: s.Lon}
}

// NearbySpot pairs a spot with the distance to a query center. The
// distance lives on this wrapper, not on the entity, so it can never be
// mistaken for persistent state.
type NearbySpot struct {
	Spot           Spot    `json:"spot"`
	DistanceMeters float64 `json:"distance_m"`
}

// EncodeSpots serializes the whole collection as one JSON blob.
func EncodeSpots(spots []Spot) ([]byte, error) {
	return json.Marshal(spots)
}

// DecodeSpots deserializes a snapshot blob. A record that fails to parse
// (unknown type/status label, missing id) is skipped; the rest of the
// batch is admitted. The skipped count is returned for logging.
func DecodeSpots(data []byte) ([]Spot, int, error) {
	if len(data) == 0 {
		return nil, 0, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode snapshot: %w", err)
	}

	spots := make([]Spot, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		var s Spot
		if err := json.Unmarshal(r, &s); err != nil {
			skipped++
			continue
		}
		if s.ID == "" || !s.Type.Valid() || !s.Status.Valid() {
			skipped++
			continue
		}
		spots = append(spots, s)
	}

	return spots, skipped, nil
}
