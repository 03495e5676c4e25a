// Package geo provides great-circle distance math for the tracking engine.
package geo

import (
	"math"

	"tourguide/internal/domain/entity"
)

// statuteMilesPerNauticalMile converts nautical miles to statute miles.
const statuteMilesPerNauticalMile = 1.15077945

// Distance returns the great-circle distance between two coordinates in
// statute miles, using the spherical law of cosines.
func Distance(a, b entity.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	cosine := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)
	// Floating-point rounding can push the cosine marginally outside
	// [-1, 1], which would make Acos return NaN.
	cosine = math.Min(1, math.Max(-1, cosine))

	angle := math.Acos(cosine)
	nauticalMiles := 60.0 * angle * 180.0 / math.Pi

	return statuteMilesPerNauticalMile * nauticalMiles
}
