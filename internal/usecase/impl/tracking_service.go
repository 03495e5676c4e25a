package impl

import (
	"context"
	"log/slog"
	"sort"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/service"
	"tourguide/internal/geo"
	"tourguide/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNearbyAttractionCount = 5

type trackingService struct {
	gps        service.GPSService
	rewards    usecase.RewardsUsecase
	tripPricer service.TripPricerService
	logger     *slog.Logger

	nearbyCount      int
	tripPricerAPIKey string
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	GPS        service.GPSService
	Rewards    usecase.RewardsUsecase
	TripPricer service.TripPricerService
	Logger     *slog.Logger
	Config     *config.Config
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	nearbyCount := defaultNearbyAttractionCount
	if params.Config.Tracking != nil && params.Config.Tracking.NearbyAttractionCount > 0 {
		nearbyCount = params.Config.Tracking.NearbyAttractionCount
	}

	apiKey := ""
	if params.Config.TripPricer != nil {
		apiKey = params.Config.TripPricer.APIKey
	}

	return &trackingService{
		gps:              params.GPS,
		rewards:          params.Rewards,
		tripPricer:       params.TripPricer,
		logger:           params.Logger,
		nearbyCount:      nearbyCount,
		tripPricerAPIKey: apiKey,
	}
}

// TrackUserLocation records a fresh position for the user and runs
// reward calculation synchronously before returning.
func (s *trackingService) TrackUserLocation(ctx context.Context, user *entity.User) (entity.VisitedLocation, error) {
	visited, err := s.gps.UserLocation(ctx, user.ID)
	if err != nil {
		return entity.VisitedLocation{}, errors.Wrap(err, "failed to fetch user location")
	}

	user.AddVisitedLocation(visited)

	if err := s.rewards.CalculateRewards(ctx, user); err != nil {
		return entity.VisitedLocation{}, errors.Wrap(err, "failed to calculate rewards")
	}

	return visited, nil
}

// UserLocation returns the last visited location, tracking a fresh one
// if the user has no history yet.
func (s *trackingService) UserLocation(ctx context.Context, user *entity.User) (entity.VisitedLocation, error) {
	if last, ok := user.LastVisitedLocation(); ok {
		return last, nil
	}

	return s.TrackUserLocation(ctx, user)
}

// NearbyAttractions returns the closest attractions to the user's
// current position, sorted ascending by distance, annotated with the
// hypothetical reward points for each. Catalog order breaks ties.
func (s *trackingService) NearbyAttractions(ctx context.Context, user *entity.User) ([]usecase.NearbyAttraction, error) {
	attractions, err := s.gps.Attractions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch attraction catalog")
	}

	userLocation, err := s.UserLocation(ctx, user)
	if err != nil {
		return nil, err
	}
	position := userLocation.Location

	nearby := make([]usecase.NearbyAttraction, 0, len(attractions))
	for _, attraction := range attractions {
		points, err := s.rewards.RewardPoints(ctx, attraction, user)
		if err != nil {
			return nil, err
		}

		nearby = append(nearby, usecase.NearbyAttraction{
			AttractionName:      attraction.Name,
			AttractionLatitude:  attraction.Location.Latitude,
			AttractionLongitude: attraction.Location.Longitude,
			UserLatitude:        position.Latitude,
			UserLongitude:       position.Longitude,
			DistanceMiles:       geo.Distance(attraction.Location, position),
			RewardPoints:        points,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMiles < nearby[j].DistanceMiles
	})

	if len(nearby) > s.nearbyCount {
		nearby = nearby[:s.nearbyCount]
	}

	return nearby, nil
}

// TripDeals quotes trip offers priced against the user's accumulated
// reward points and caches them on the user.
func (s *trackingService) TripDeals(ctx context.Context, user *entity.User) ([]entity.Provider, error) {
	cumulativePoints := user.TotalRewardPoints()

	providers, err := s.tripPricer.Price(ctx, s.tripPricerAPIKey, user.ID,
		user.Preferences.NumberOfAdults, user.Preferences.NumberOfKids,
		user.Preferences.TripDuration, cumulativePoints)
	if err != nil {
		return nil, errors.Wrap(err, "failed to quote trip deals")
	}

	user.SetTripDeals(providers)

	return providers, nil
}
