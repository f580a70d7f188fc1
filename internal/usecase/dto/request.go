package dto

// CreateSpotRequest - user submission of a new accessibility spot.
type CreateSpotRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Type        string  `json:"type" validate:"required"`
	Status      string  `json:"status" validate:"required"`
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" validate:"min=-180,max=180"`
	PhotoRef    *string `json:"photo_ref,omitempty"`
}

// UpdateSpotRequest - full replacement of a spot's mutable state.
type UpdateSpotRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Type        string  `json:"type" validate:"required"`
	Status      string  `json:"status" validate:"required"`
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" validate:"min=-180,max=180"`
	PhotoRef    *string `json:"photo_ref,omitempty"`
}

// RadiusSpotsRequest - proximity query around a center.
type RadiusSpotsRequest struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusM float64 `json:"radius_m" validate:"required,min=1,max=50000"`
}

// AreaScoreRequest - neighborhood accessibility score query.
type AreaScoreRequest struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusM float64 `json:"radius_m" validate:"required,min=1,max=50000"`
}

// ImportRequest - triggered geodata import around a center.
type ImportRequest struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusM float64 `json:"radius_m" validate:"required,min=1,max=50000"`
}
