package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters

	// MetersPerDegree is the flat-earth scale factor used by PlanarDistance.
	// It is not corrected for latitude; the error is acceptable at city
	// scale (up to a few tens of km) and callers depend on the exact value.
	MetersPerDegree = 111000.0
)

// PlanarDistance approximates the distance between two points in meters by
// scaling each degree of latitude/longitude difference by MetersPerDegree
// and taking the Euclidean norm. Cheap and good enough for the short
// distances cluster membership tests operate on; do not use it for
// long-range or high-latitude geometry.
func PlanarDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * MetersPerDegree
	dLon := (lon2 - lon1) * MetersPerDegree
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Bearing calculates the initial bearing (forward azimuth) from point 1 to point 2
// Returns bearing in degrees (0-360), where 0 is North, 90 is East, etc.
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	// Convert to radians
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lonDiff := (lon2 - lon1) * math.Pi / 180

	// Calculate bearing
	y := math.Sin(lonDiff) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x)

	// Convert to degrees and normalize to 0-360
	bearingDeg := bearing * 180 / math.Pi
	return math.Mod(bearingDeg+360, 360)
}

// Midpoint returns the arithmetic mean of the two coordinates. This is a
// planar approximation, not a great-circle midpoint; it is only used to
// place direction indicators between consecutive samples, where the error
// is invisible at the distances involved.
func Midpoint(lat1, lon1, lat2, lon2 float64) (float64, float64) {
	return (lat1 + lat2) / 2, (lon1 + lon2) / 2
}
