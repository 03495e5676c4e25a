package entity

import (
	"github.com/google/uuid"
)

// Attraction is a named point of interest with a fixed coordinate.
// Attractions are sourced from the GPS catalog and are read-only to the
// rest of the system.
type Attraction struct {
	ID       uuid.UUID `json:"attractionId"`
	Name     string    `json:"attractionName"`
	City     string    `json:"city"`
	State    string    `json:"state"`
	Location Location  `json:"location"`
}
