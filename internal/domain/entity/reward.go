package entity

// UserReward ties one visited location to the attraction it was near
// and the points awarded for it. A user holds at most one reward per
// attraction for their lifetime; the reward attributor enforces this.
type UserReward struct {
	VisitedLocation VisitedLocation `json:"visitedLocation"`
	Attraction      Attraction      `json:"attraction"`
	Points          int             `json:"rewardPoints"`
}
