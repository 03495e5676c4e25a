// Package gpsutil is an in-process stand-in for the external GPS feed.
// It serves the static attraction catalog and simulated user positions.
package gpsutil

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/service"

	"github.com/google/uuid"
)

// Simulated positions stay inside the latitude band used by web
// mercator maps.
const (
	minLatitude = -85.05112878
	maxLatitude = 85.05112878
)

type gpsUtil struct {
	attractions []entity.Attraction

	randMu sync.Mutex
	rand   *rand.Rand
}

// New creates a simulated GPS service with the built-in catalog.
func New() service.GPSService {
	return &gpsUtil{
		attractions: seedAttractions(),
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// UserLocation returns a fresh simulated position for the user.
func (g *gpsUtil) UserLocation(_ context.Context, userID uuid.UUID) (entity.VisitedLocation, error) {
	g.randMu.Lock()
	latitude := minLatitude + g.rand.Float64()*(maxLatitude-minLatitude)
	longitude := -180 + g.rand.Float64()*360
	g.randMu.Unlock()

	return entity.VisitedLocation{
		UserID: userID,
		Location: entity.Location{
			Latitude:  latitude,
			Longitude: longitude,
		},
		TimeVisited: time.Now().UTC(),
	}, nil
}

// Attractions returns a snapshot of the attraction catalog.
func (g *gpsUtil) Attractions(_ context.Context) ([]entity.Attraction, error) {
	snapshot := make([]entity.Attraction, len(g.attractions))
	copy(snapshot, g.attractions)

	return snapshot, nil
}

func seedAttractions() []entity.Attraction {
	seeds := []struct {
		name      string
		city      string
		state     string
		latitude  float64
		longitude float64
	}{
		{"Disneyland", "Anaheim", "CA", 33.817595, -117.922008},
		{"Jackson Hole", "Jackson Hole", "WY", 43.582767, -110.821999},
		{"Mojave National Preserve", "Kelso", "CA", 35.141689, -115.510399},
		{"Joshua Tree National Park", "Joshua Tree National Park", "CA", 33.881866, -115.90065},
		{"Buffalo National River", "St Joe", "AR", 35.985512, -92.757652},
		{"Hot Springs National Park", "Hot Springs", "AR", 34.52153, -93.042267},
		{"Kartchner Caverns State Park", "Benson", "AZ", 31.837551, -110.347382},
		{"Legend Valley", "Thornville", "OH", 39.937778, -82.40667},
		{"Flowers Bakery of London", "London", "KY", 37.131527, -84.07486},
		{"McKinley Tower", "Anchorage", "AK", 61.218887, -149.877502},
		{"Flatiron Building", "New York City", "NY", 40.741112, -73.989723},
		{"Fallingwater", "Mill Run", "PA", 39.906113, -79.468056},
		{"Union Station", "Washington D.C.", "DC", 38.897095, -77.006332},
		{"Roger Dean Stadium", "Jupiter", "FL", 26.890959, -80.116577},
		{"Texas Memorial Stadium", "Austin", "TX", 30.283682, -97.732536},
		{"Bryce Canyon National Park", "Bryce Canyon City", "UT", 37.593048, -112.187332},
		{"Cinderella Castle", "Orlando", "FL", 28.419411, -81.5812},
		{"Cadillac Mountain", "Bar Harbor", "ME", 44.35278, -68.22725},
		{"Grand Prismatic Spring", "Yellowstone National Park", "WY", 44.525121, -110.83819},
		{"Zoo Tampa at Lowry Park", "Tampa", "FL", 28.012804, -82.469269},
		{"Franklin Park Zoo", "Boston", "MA", 42.302601, -71.086731},
		{"El Yunque National Forest", "Rio Grande", "PR", 18.295233, -65.799987},
		{"Golden Gate Bridge", "San Francisco", "CA", 37.819929, -122.478255},
		{"Devils Tower", "Crook County", "WY", 44.59095, -104.715243},
		{"Mount Rushmore National Memorial", "Keystone", "SD", 43.879102, -103.459067},
		{"Niagara Falls State Park", "Niagara Falls", "NY", 43.087653, -79.079063},
	}

	attractions := make([]entity.Attraction, 0, len(seeds))
	for _, seed := range seeds {
		attractions = append(attractions, entity.Attraction{
			ID:    uuid.New(),
			Name:  seed.name,
			City:  seed.city,
			State: seed.state,
			Location: entity.Location{
				Latitude:  seed.latitude,
				Longitude: seed.longitude,
			},
		})
	}

	return attractions
}
