package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single tracked
// account. It exclusively owns its visited-location history (append-only,
// chronological by tracking order) and its reward set (at most one
// reward per attraction).
//
// The embedded mutex makes individual reads and appends safe to call
// from concurrent request handlers. It is intentionally not the
// mechanism that guarantees at-most-once reward attribution; that is
// the reward service's per-user lock, which serializes the whole
// read-check-write sequence.
type User struct {
	ID          uuid.UUID       `json:"userId"`
	Name        string          `json:"userName"`
	Phone       string          `json:"phoneNumber"`
	Email       string          `json:"emailAddress"`
	Preferences UserPreferences `json:"userPreferences"`
	CreatedAt   time.Time       `json:"createdAt"`

	mu               sync.RWMutex
	visitedLocations []VisitedLocation
	rewards          []UserReward
	tripDeals        []Provider
}

// UserPreferences holds the trip parameters used when quoting deals.
type UserPreferences struct {
	TripDuration   int `json:"tripDuration"`
	TicketQuantity int `json:"ticketQuantity"`
	NumberOfAdults int `json:"numberOfAdults"`
	NumberOfKids   int `json:"numberOfChildren"`
}

// NewUser creates a user with default trip preferences.
func NewUser(id uuid.UUID, name, phone, email string) *User {
	return &User{
		ID:    id,
		Name:  name,
		Phone: phone,
		Email: email,
		Preferences: UserPreferences{
			TripDuration:   1,
			TicketQuantity: 1,
			NumberOfAdults: 1,
		},
		CreatedAt: time.Now(),
	}
}

// AddVisitedLocation appends a tracked position to the user's history.
func (u *User) AddVisitedLocation(visited VisitedLocation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.visitedLocations = append(u.visitedLocations, visited)
}

// VisitedLocations returns a snapshot of the user's location history in
// tracking order.
func (u *User) VisitedLocations() []VisitedLocation {
	u.mu.RLock()
	defer u.mu.RUnlock()
	snapshot := make([]VisitedLocation, len(u.visitedLocations))
	copy(snapshot, u.visitedLocations)

	return snapshot
}

// LastVisitedLocation returns the most recently tracked position and
// false if the user has no history yet.
func (u *User) LastVisitedLocation() (VisitedLocation, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if len(u.visitedLocations) == 0 {
		return VisitedLocation{}, false
	}

	return u.visitedLocations[len(u.visitedLocations)-1], true
}

// AddReward records a reward, dropping it if the user already holds one
// for the same attraction. It reports whether the reward was added.
func (u *User) AddReward(reward UserReward) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, held := range u.rewards {
		if held.Attraction.Name == reward.Attraction.Name {
			return false
		}
	}
	u.rewards = append(u.rewards, reward)

	return true
}

// HasRewardFor reports whether the user already holds a reward for the
// named attraction.
func (u *User) HasRewardFor(attractionName string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	for _, held := range u.rewards {
		if held.Attraction.Name == attractionName {
			return true
		}
	}

	return false
}

// Rewards returns a snapshot of the user's accumulated rewards.
func (u *User) Rewards() []UserReward {
	u.mu.RLock()
	defer u.mu.RUnlock()
	snapshot := make([]UserReward, len(u.rewards))
	copy(snapshot, u.rewards)

	return snapshot
}

// TotalRewardPoints sums the points across all held rewards.
func (u *User) TotalRewardPoints() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	total := 0
	for _, held := range u.rewards {
		total += held.Points
	}

	return total
}

// SetTripDeals replaces the user's cached trip offers.
func (u *User) SetTripDeals(deals []Provider) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tripDeals = deals
}

// TripDeals returns the most recently quoted trip offers.
func (u *User) TripDeals() []Provider {
	u.mu.RLock()
	defer u.mu.RUnlock()
	snapshot := make([]Provider, len(u.tripDeals))
	copy(snapshot, u.tripDeals)

	return snapshot
}
