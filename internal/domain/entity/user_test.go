package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser() *User {
	return NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
}

func TestNewUser_DefaultPreferences(t *testing.T) {
	user := newTestUser()

	assert.Equal(t, 1, user.Preferences.TripDuration)
	assert.Equal(t, 1, user.Preferences.TicketQuantity)
	assert.Equal(t, 1, user.Preferences.NumberOfAdults)
	assert.Equal(t, 0, user.Preferences.NumberOfKids)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUser_VisitedLocationOrder(t *testing.T) {
	user := newTestUser()

	_, ok := user.LastVisitedLocation()
	assert.False(t, ok)

	first := VisitedLocation{UserID: user.ID, Location: Location{Latitude: 1}, TimeVisited: time.Now()}
	second := VisitedLocation{UserID: user.ID, Location: Location{Latitude: 2}, TimeVisited: time.Now()}
	user.AddVisitedLocation(first)
	user.AddVisitedLocation(second)

	history := user.VisitedLocations()
	require.Len(t, history, 2)
	assert.Equal(t, first, history[0])
	assert.Equal(t, second, history[1])

	last, ok := user.LastVisitedLocation()
	require.True(t, ok)
	assert.Equal(t, second, last)
}

func TestUser_VisitedLocationsSnapshotIsIndependent(t *testing.T) {
	user := newTestUser()
	user.AddVisitedLocation(VisitedLocation{UserID: user.ID, Location: Location{Latitude: 1}})

	snapshot := user.VisitedLocations()
	snapshot[0].Location.Latitude = 99

	assert.Equal(t, 1.0, user.VisitedLocations()[0].Location.Latitude)
}

func TestUser_AddRewardDeduplicatesByAttractionName(t *testing.T) {
	user := newTestUser()
	attraction := Attraction{ID: uuid.New(), Name: "Disneyland"}

	assert.True(t, user.AddReward(UserReward{Attraction: attraction, Points: 10}))
	assert.False(t, user.AddReward(UserReward{Attraction: attraction, Points: 99}))

	rewards := user.Rewards()
	require.Len(t, rewards, 1)
	assert.Equal(t, 10, rewards[0].Points)
	assert.True(t, user.HasRewardFor("Disneyland"))
	assert.False(t, user.HasRewardFor("Jackson Hole"))
}

func TestUser_TotalRewardPoints(t *testing.T) {
	user := newTestUser()
	assert.Equal(t, 0, user.TotalRewardPoints())

	user.AddReward(UserReward{Attraction: Attraction{Name: "Disneyland"}, Points: 75})
	user.AddReward(UserReward{Attraction: Attraction{Name: "Jackson Hole"}, Points: 25})

	assert.Equal(t, 100, user.TotalRewardPoints())
}

func TestUser_TripDeals(t *testing.T) {
	user := newTestUser()
	assert.Empty(t, user.TripDeals())

	deals := []Provider{{Name: "Holiday Travels", Price: 450, TripID: uuid.New()}}
	user.SetTripDeals(deals)
	assert.Equal(t, deals, user.TripDeals())

	replacement := []Provider{{Name: "Sunny Days", Price: 200, TripID: uuid.New()}}
	user.SetTripDeals(replacement)
	assert.Equal(t, replacement, user.TripDeals())
}
