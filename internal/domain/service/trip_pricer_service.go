package service

import (
	"context"

	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
)

// TripPricerService quotes trip offers from external providers.
// Accumulated reward points are passed through as a discount input; the
// provider-selection algorithm itself is opaque to this system.
type TripPricerService interface {
	Price(ctx context.Context, apiKey string, tripID uuid.UUID, adults, children, nights, rewardPoints int) ([]entity.Provider, error)
}
