package usecase

import (
	"context"

	"tourguide/internal/domain/entity"
)

// NearbyAttraction annotates one catalog attraction with its distance
// from the user's current position and its hypothetical point value.
type NearbyAttraction struct {
	AttractionName      string  `json:"attractionName"`
	AttractionLatitude  float64 `json:"attractionLatitude"`
	AttractionLongitude float64 `json:"attractionLongitude"`
	UserLatitude        float64 `json:"userLatitude"`
	UserLongitude       float64 `json:"userLongitude"`
	DistanceMiles       float64 `json:"distance"`
	RewardPoints        int     `json:"rewardPoints"`
}

// TrackingUsecase records user positions and answers location-derived
// queries. Track calls for one user are expected to come from a single
// caller session; only reward calculation is serialized per user.
type TrackingUsecase interface {
	// TrackUserLocation obtains a fresh position for the user, appends
	// it to their history, runs reward calculation synchronously and
	// returns the recorded location.
	TrackUserLocation(ctx context.Context, user *entity.User) (entity.VisitedLocation, error)

	// UserLocation returns the user's most recent visited location,
	// tracking a fresh one if the history is empty.
	UserLocation(ctx context.Context, user *entity.User) (entity.VisitedLocation, error)

	// NearbyAttractions returns the closest attractions to the user's
	// current position, sorted ascending by distance.
	NearbyAttractions(ctx context.Context, user *entity.User) ([]NearbyAttraction, error)

	// TripDeals quotes trip offers priced against the user's
	// accumulated reward points and caches them on the user.
	TripDeals(ctx context.Context, user *entity.User) ([]entity.Provider, error)
}
