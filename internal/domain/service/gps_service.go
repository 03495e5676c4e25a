// Package service defines interfaces for the external collaborators the
// engine depends on: the GPS feed, the points central, the trip pricer
// and the event bus. Concrete implementations live under internal/infra.
package service

import (
	"context"

	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
)

// GPSService supplies simulated user positions and the static
// attraction catalog. Both calls may fail transiently.
type GPSService interface {
	// UserLocation returns a fresh position for the given user.
	UserLocation(ctx context.Context, userID uuid.UUID) (entity.VisitedLocation, error)

	// Attractions returns the full attraction catalog. The returned
	// slice is a fixed-position snapshot per call.
	Attractions(ctx context.Context) ([]entity.Attraction, error)
}
