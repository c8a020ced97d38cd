package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/paceline/paceline/internal/pkg/models"
)

// GeohashPrecision is the fixed geohash length used for spatial bucketing
// of session positions (~1.2 km cells).
const GeohashPrecision uint = 6

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a coordinate pair to a fixed-precision geohash
func EncodeLocation(lat, lng float64, precision uint) string {
	if precision == 0 {
		precision = GeohashPrecision
	}
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// DecodeGeohash converts a geohash string back to its cell center
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// CalculateDistance calculates the great-circle distance between two points
// in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// PathDistanceKm sums the great-circle distances between consecutive path
// points in order. Points are expected in non-decreasing timestamp order;
// the sum is insensitive to absolute time.
func PathDistanceKm(points []models.PathPoint) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += CalculateDistance(
			GeoPoint{Latitude: points[i-1].Latitude, Longitude: points[i-1].Longitude},
			GeoPoint{Latitude: points[i].Latitude, Longitude: points[i].Longitude},
		)
	}
	return total
}

// ValidateCoordinates checks a latitude/longitude pair is on the globe
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
