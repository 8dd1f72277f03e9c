// Package geo holds the pure geographic primitives: decimal-degree validation,
// the canonical [lon, lat] point used for spatial queries, and great-circle math.
package geo

import (
	"fmt"
	"math"

	"trail-catalog-go/internal/errs"
)

// EarthRadiusKm is the mean earth radius used for all great-circle conversions.
const EarthRadiusKm = 6371.0

// NormalizePoint validates a decimal-degree pair and returns the canonical
// point coordinates ordered [lon, lat], matching GeoJSON convention.
func NormalizePoint(lat, lon float64) ([]float64, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return nil, fmt.Errorf("%w: coordinates must be finite numbers", errs.ErrValidation)
	}
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude %v out of range [-90, 90]", errs.ErrValidation, lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: longitude %v out of range [-180, 180]", errs.ErrValidation, lon)
	}
	return []float64{lon, lat}, nil
}

// HaversineKm computes the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	chord := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * chord
}

// BoundingBox returns a latitude/longitude window guaranteed to contain the
// spherical cap of the given radius around the center point. It is a coarse
// prefilter for indexed queries; candidates still need the haversine test.
func BoundingBox(lat, lon, radiusKm float64) (minLat, maxLat, minLon, maxLon float64) {
	angular := radiusKm / EarthRadiusKm
	latDelta := angular * 180 / math.Pi

	minLat = math.Max(lat-latDelta, -90)
	maxLat = math.Min(lat+latDelta, 90)

	// Longitude degrees shrink toward the poles; widen accordingly and fall back
	// to the full range when the cap wraps a pole.
	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat <= math.Sin(angular) {
		return minLat, maxLat, -180, 180
	}
	lonDelta := math.Asin(math.Sin(angular)/cosLat) * 180 / math.Pi
	minLon = math.Max(lon-lonDelta, -180)
	maxLon = math.Min(lon+lonDelta, 180)
	return minLat, maxLat, minLon, maxLon
}
