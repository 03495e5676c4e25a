package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"tourguide/internal/domain/entity"
	"tourguide/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRewardsUsecase records CalculateRewards invocations and serves
// fixed per-attraction points, so ranking tests are deterministic.
type fakeRewardsUsecase struct {
	mu             sync.Mutex
	calculateCalls int
	pointsByName   map[string]int
}

func (f *fakeRewardsUsecase) CalculateRewards(_ context.Context, _ *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculateCalls++

	return nil
}

func (f *fakeRewardsUsecase) IsWithinAttractionProximity(_ entity.Attraction, _ entity.Location) bool {
	return true
}

func (f *fakeRewardsUsecase) RewardPoints(_ context.Context, attraction entity.Attraction, _ *entity.User) (int, error) {
	return f.pointsByName[attraction.Name], nil
}

func (f *fakeRewardsUsecase) SetProximityBuffer(_ float64) {}
func (f *fakeRewardsUsecase) SetDefaultProximityBuffer()   {}

type stubTripPricer struct {
	providers []entity.Provider

	gotRewardPoints int
	gotAdults       int
	gotChildren     int
	gotNights       int
}

func (s *stubTripPricer) Price(_ context.Context, _ string, _ uuid.UUID, adults, children, nights, rewardPoints int) ([]entity.Provider, error) {
	s.gotAdults = adults
	s.gotChildren = children
	s.gotNights = nights
	s.gotRewardPoints = rewardPoints

	return s.providers, nil
}

func newTrackingServiceForTest(gps *stubGPS, rewards usecase.RewardsUsecase, pricer *stubTripPricer) usecase.TrackingUsecase {
	return NewTrackingService(TrackingServiceParams{
		GPS:        gps,
		Rewards:    rewards,
		TripPricer: pricer,
		Logger:     testLogger(),
		Config:     testConfig(),
	})
}

func TestTrackingService_TrackUserLocation(t *testing.T) {
	gps := &stubGPS{location: entity.Location{Latitude: 48.858093, Longitude: 2.294694}}
	rewards := &fakeRewardsUsecase{}
	svc := newTrackingServiceForTest(gps, rewards, &stubTripPricer{})

	user := entity.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	visited, err := svc.TrackUserLocation(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, user.ID, visited.UserID)
	assert.Equal(t, gps.location, visited.Location)

	// The visit is appended before reward calculation runs.
	history := user.VisitedLocations()
	require.Len(t, history, 1)
	assert.Equal(t, visited, history[0])
	assert.Equal(t, 1, rewards.calculateCalls)
}

func TestTrackingService_UserLocation_ReturnsLastWithoutTracking(t *testing.T) {
	gps := &stubGPS{location: entity.Location{Latitude: 1, Longitude: 1}}
	rewards := &fakeRewardsUsecase{}
	svc := newTrackingServiceForTest(gps, rewards, &stubTripPricer{})

	user := entity.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	last := entity.VisitedLocation{
		UserID:      user.ID,
		Location:    entity.Location{Latitude: 40.741112, Longitude: -73.989723},
		TimeVisited: time.Now().UTC(),
	}
	user.AddVisitedLocation(last)

	got, err := svc.UserLocation(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, last, got)
	assert.Equal(t, 0, gps.userCalls)
	assert.Equal(t, 0, rewards.calculateCalls)
}

func TestTrackingService_UserLocation_TracksWhenHistoryEmpty(t *testing.T) {
	gps := &stubGPS{location: entity.Location{Latitude: 1, Longitude: 1}}
	rewards := &fakeRewardsUsecase{}
	svc := newTrackingServiceForTest(gps, rewards, &stubTripPricer{})

	user := entity.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	got, err := svc.UserLocation(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, gps.location, got.Location)
	assert.Equal(t, 1, gps.userCalls)
	assert.Len(t, user.VisitedLocations(), 1)
}

func TestTrackingService_NearbyAttractions_FiveClosestAscending(t *testing.T) {
	// Catalog deliberately out of distance order; the user sits at the
	// origin, so distance grows with longitude along the equator.
	attractions := []entity.Attraction{
		attractionAt("Fourth", 0, 4),
		attractionAt("First", 0, 1),
		attractionAt("Sixth", 0, 6),
		attractionAt("Second", 0, 2),
		attractionAt("Seventh", 0, 7),
		attractionAt("Third", 0, 3),
		attractionAt("Fifth", 0, 5),
	}
	gps := &stubGPS{attractions: attractions, location: entity.Location{Latitude: 0, Longitude: 0}}
	rewards := &fakeRewardsUsecase{pointsByName: map[string]int{"First": 11, "Second": 22}}
	svc := newTrackingServiceForTest(gps, rewards, &stubTripPricer{})

	user := entity.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	user.AddVisitedLocation(entity.VisitedLocation{UserID: user.ID, Location: entity.Location{Latitude: 0, Longitude: 0}, TimeVisited: time.Now()})

	nearby, err := svc.NearbyAttractions(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, nearby, 5)

	names := make([]string, 0, len(nearby))
	for i, attraction := range nearby {
		names = append(names, attraction.AttractionName)
		if i > 0 {
			assert.LessOrEqual(t, nearby[i-1].DistanceMiles, attraction.DistanceMiles)
		}
		assert.Equal(t, 0.0, attraction.UserLatitude)
		assert.Equal(t, 0.0, attraction.UserLongitude)
	}
	assert.Equal(t, []string{"First", "Second", "Third", "Fourth", "Fifth"}, names)
	assert.Equal(t, 11, nearby[0].RewardPoints)
	assert.Equal(t, 22, nearby[1].RewardPoints)
}

func TestTrackingService_NearbyAttractions_ShortCatalog(t *testing.T) {
	attractions := []entity.Attraction{
		attractionAt("Second", 0, 2),
		attractionAt("First", 0, 1),
	}
	gps := &stubGPS{attractions: attractions, location: entity.Location{Latitude: 0, Longitude: 0}}
	svc := newTrackingServiceForTest(gps, &fakeRewardsUsecase{}, &stubTripPricer{})

	user := entity.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	user.AddVisitedLocation(entity.VisitedLocation{UserID: user.ID, Location: entity.Location{}, TimeVisited: time.Now()})

	nearby, err := svc.NearbyAttractions(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "First", nearby[0].AttractionName)
	assert.Equal(t, "Second", nearby[1].AttractionName)
}

func TestTrackingService_TripDeals(t *testing.T) {
	pricer := &stubTripPricer{providers: []entity.Provider{
		{Name: "Holiday Travels", Price: 450, TripID: uuid.New()},
		{Name: "United Partners Vacations", Price: 320, TripID: uuid.New()},
	}}
	svc := newTrackingServiceForTest(&stubGPS{}, &fakeRewardsUsecase{}, pricer)

	user := entity.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	user.Preferences.NumberOfAdults = 2
	user.Preferences.NumberOfKids = 3
	user.Preferences.TripDuration = 4
	user.AddReward(entity.UserReward{Attraction: attractionAt("Disneyland", 0, 0), Points: 75})
	user.AddReward(entity.UserReward{Attraction: attractionAt("Jackson Hole", 1, 1), Points: 25})

	deals, err := svc.TripDeals(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, pricer.providers, deals)
	assert.Equal(t, pricer.providers, user.TripDeals())
	assert.Equal(t, 100, pricer.gotRewardPoints)
	assert.Equal(t, 2, pricer.gotAdults)
	assert.Equal(t, 3, pricer.gotChildren)
	assert.Equal(t, 4, pricer.gotNights)
}
