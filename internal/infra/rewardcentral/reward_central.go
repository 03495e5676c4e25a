// Package rewardcentral is an in-process stand-in for the external
// points-lookup service.
package rewardcentral

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"tourguide/internal/domain/service"

	"github.com/google/uuid"
)

type rewardCentral struct {
	randMu sync.Mutex
	rand   *rand.Rand
}

// New creates a simulated points-lookup service.
func New() service.RewardPointsService {
	return &rewardCentral{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// RewardPoints returns a simulated point value between 1 and 1000.
func (r *rewardCentral) RewardPoints(ctx context.Context, _, _ uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.randMu.Lock()
	defer r.randMu.Unlock()

	return r.rand.Intn(1000) + 1, nil
}
