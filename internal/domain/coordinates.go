package domain

import "math"

// Kilometers per degree at mid latitudes. Fixed constants, not
// geographically adaptive; a known accuracy limitation for routes far from
// the reference latitude.
const (
	kmPerDegreeLat = 111.0
	kmPerDegreeLng = 85.0
)

// Geographic coordinates of a pickup stop (latitude, longitude).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the pair is a well-formed lat/lng coordinate.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// DistanceKm returns the approximate planar distance to other in kilometers,
// using a scaled-equirectangular approximation.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	dLat := (other.Lat - c.Lat) * kmPerDegreeLat
	dLng := (other.Lng - c.Lng) * kmPerDegreeLng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
