// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is an immutable geographic coordinate in decimal degrees.
// Latitude is expected in [-90, 90] and longitude in [-180, 180];
// range validation is the responsibility of the producing layer.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VisitedLocation is a single tracked position for a user. Once created
// it is never mutated; it is appended to the user's location history in
// the order the tracking calls were made.
type VisitedLocation struct {
	UserID      uuid.UUID `json:"userId"`
	Location    Location  `json:"location"`
	TimeVisited time.Time `json:"timeVisited"`
}
