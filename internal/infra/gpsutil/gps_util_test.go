package gpsutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLocation_WithinBounds(t *testing.T) {
	gps := New()
	userID := uuid.New()

	for i := 0; i < 100; i++ {
		visited, err := gps.UserLocation(context.Background(), userID)
		require.NoError(t, err)

		assert.Equal(t, userID, visited.UserID)
		assert.False(t, visited.TimeVisited.IsZero())
		assert.GreaterOrEqual(t, visited.Location.Latitude, minLatitude)
		assert.LessOrEqual(t, visited.Location.Latitude, maxLatitude)
		assert.GreaterOrEqual(t, visited.Location.Longitude, -180.0)
		assert.LessOrEqual(t, visited.Location.Longitude, 180.0)
	}
}

func TestAttractions_StableCatalog(t *testing.T) {
	gps := New()

	first, err := gps.Attractions(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, first)

	names := make(map[string]bool, len(first))
	for _, attraction := range first {
		assert.NotEqual(t, uuid.Nil, attraction.ID)
		assert.NotEmpty(t, attraction.Name)
		assert.False(t, names[attraction.Name], "attraction %s listed twice", attraction.Name)
		names[attraction.Name] = true
	}

	// IDs are stable across calls within a process.
	second, err := gps.Attractions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Snapshots are independent copies.
	second[0].Name = "mutated"
	third, err := gps.Attractions(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", third[0].Name)
}
