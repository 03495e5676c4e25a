// Package usecase defines the application-layer interfaces of the
// tracking and reward engine.
package usecase

import (
	"context"

	"tourguide/internal/domain/entity"
)

// RewardsUsecase is the reward attribution engine. CalculateRewards may
// be invoked concurrently for many users and concurrently for the same
// user; per user it is serialized internally so that a user ends up
// with at most one reward per attraction, ever.
type RewardsUsecase interface {
	// CalculateRewards evaluates the user's full visit history against
	// the attraction catalog and commits any newly earned rewards.
	CalculateRewards(ctx context.Context, user *entity.User) error

	// IsWithinAttractionProximity reports whether a location falls
	// inside the loose attraction proximity range.
	IsWithinAttractionProximity(attraction entity.Attraction, location entity.Location) bool

	// RewardPoints returns the point value of an attraction for a user
	// without attributing anything.
	RewardPoints(ctx context.Context, attraction entity.Attraction, user *entity.User) (int, error)

	// SetProximityBuffer overrides the reward radius in statute miles.
	SetProximityBuffer(miles float64)

	// SetDefaultProximityBuffer restores the default reward radius.
	SetDefaultProximityBuffer()
}
