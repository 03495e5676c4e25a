package service

import (
	"context"

	"github.com/google/uuid"
)

// RewardPointsService looks up the point value of an attraction for a
// user. Calls may fail transiently; a failure must never corrupt the
// user's reward set.
type RewardPointsService interface {
	RewardPoints(ctx context.Context, attractionID, userID uuid.UUID) (int, error)
}
