package geo

import (
	"math"
	"testing"

	"tourguide/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_IdenticalPointsAreZero(t *testing.T) {
	points := []entity.Location{
		{Latitude: 0, Longitude: 0},
		{Latitude: 51.5007, Longitude: -0.1246},
		{Latitude: -33.8568, Longitude: 151.2153},
		{Latitude: 90, Longitude: 0},
	}

	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_Symmetry(t *testing.T) {
	a := entity.Location{Latitude: 40.689247, Longitude: -74.044502}
	b := entity.Location{Latitude: 48.858093, Longitude: 2.294694}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		a     entity.Location
		b     entity.Location
		miles float64
	}{
		{
			// One degree of latitude is 60 nautical miles on the sphere.
			name:  "one degree of latitude",
			a:     entity.Location{Latitude: 0, Longitude: 0},
			b:     entity.Location{Latitude: 1, Longitude: 0},
			miles: 60 * 1.15077945,
		},
		{
			name:  "quarter circumference",
			a:     entity.Location{Latitude: 0, Longitude: 0},
			b:     entity.Location{Latitude: 0, Longitude: 90},
			miles: 90 * 60 * 1.15077945,
		},
		{
			name:  "antipodal",
			a:     entity.Location{Latitude: 0, Longitude: 0},
			b:     entity.Location{Latitude: 0, Longitude: 180},
			miles: 180 * 60 * 1.15077945,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.miles, Distance(tt.a, tt.b), 1e-6)
		})
	}
}

func TestDistance_ClampGuardsAcosDomain(t *testing.T) {
	// Coordinates close enough together that the cosine argument can
	// round above 1.
	a := entity.Location{Latitude: 10.000000000000001, Longitude: 20}
	b := entity.Location{Latitude: 10, Longitude: 20}

	d := Distance(a, b)
	require.False(t, math.IsNaN(d))
	assert.GreaterOrEqual(t, d, 0.0)
}

// The law-of-cosines result should stay close to an independent
// haversine implementation for distances past the rounding regime.
func TestDistance_AgreesWithHaversine(t *testing.T) {
	pairs := [][2]entity.Location{
		{{Latitude: 40.7128, Longitude: -74.0060}, {Latitude: 34.0522, Longitude: -118.2437}},
		{{Latitude: 35.6895, Longitude: 139.6917}, {Latitude: -33.8568, Longitude: 151.2153}},
		{{Latitude: 61.0, Longitude: -150.0}, {Latitude: 27.2, Longitude: -80.3}},
	}

	const milesPerMeter = 1 / 1609.344

	for _, pair := range pairs {
		got := Distance(pair[0], pair[1])
		want := orbgeo.DistanceHaversine(
			orb.Point{pair[0].Longitude, pair[0].Latitude},
			orb.Point{pair[1].Longitude, pair[1].Latitude},
		) * milesPerMeter

		// The reference formula treats Earth as a sphere of 60 nmi per
		// degree; allow a percent of disagreement with orb's radius.
		assert.InEpsilon(t, want, got, 0.01)
	}
}
