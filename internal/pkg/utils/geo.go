package utils

import "math"

const earthRadiusM = 6371000.0

// HaversineDistanceMeters computes the great-circle distance between two
// WGS-84 points on a spherical Earth model, in meters.
func HaversineDistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// ValidateCoordinates reports whether lat/lon are inside WGS-84 bounds.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadiusMeters limits query radii to 1 m - 50 km.
func ValidateRadiusMeters(radiusM float64) bool {
	return radiusM >= 1 && radiusM <= 50000
}
