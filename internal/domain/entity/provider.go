package entity

import (
	"github.com/google/uuid"
)

// Provider is a priced trip offer returned by the trip pricing engine.
type Provider struct {
	Name   string    `json:"name"`
	Price  float64   `json:"price"`
	TripID uuid.UUID `json:"tripId"`
}
