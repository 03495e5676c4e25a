// Package impl contains the concrete application services of the
// tracking and reward engine.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"tourguide/config"
	deliverycontext "tourguide/internal/delivery/context"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/service"
	"tourguide/internal/geo"
	"tourguide/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultRewardProximityMiles     = 10
	defaultAttractionProximityMiles = 200
)

type rewardsService struct {
	gps           service.GPSService
	rewardCentral service.RewardPointsService
	publisher     service.EventPublisher
	logger        *slog.Logger

	attractionProximityMiles float64

	bufferMu             sync.RWMutex
	defaultBufferMiles   float64
	proximityBufferMiles float64

	// One mutex per user identity, created lazily and never removed.
	// Holding it serializes the whole read-check-commit sequence of
	// CalculateRewards for that user; different users never contend.
	userLocks sync.Map // uuid.UUID -> *sync.Mutex
}

// RewardsServiceParams holds dependencies for RewardsService, injected by Fx.
type RewardsServiceParams struct {
	fx.In

	GPS           service.GPSService
	RewardCentral service.RewardPointsService
	Publisher     service.EventPublisher `optional:"true"`
	Logger        *slog.Logger
	Config        *config.Config
}

// NewRewardsService creates a new rewards service instance
func NewRewardsService(params RewardsServiceParams) usecase.RewardsUsecase {
	// If Tracking is not configured, provide a default configuration
	if params.Config.Tracking == nil {
		params.Config.Tracking = &config.TrackingConfig{
			RewardProximityMiles:     defaultRewardProximityMiles,
			AttractionProximityMiles: defaultAttractionProximityMiles,
			NearbyAttractionCount:    5,
		}
	}

	return &rewardsService{
		gps:                      params.GPS,
		rewardCentral:            params.RewardCentral,
		publisher:                params.Publisher,
		logger:                   params.Logger,
		attractionProximityMiles: params.Config.Tracking.AttractionProximityMiles,
		defaultBufferMiles:       params.Config.Tracking.RewardProximityMiles,
		proximityBufferMiles:     params.Config.Tracking.RewardProximityMiles,
	}
}

// SetProximityBuffer overrides the reward radius in statute miles.
func (s *rewardsService) SetProximityBuffer(miles float64) {
	s.bufferMu.Lock()
	defer s.bufferMu.Unlock()
	s.proximityBufferMiles = miles
}

// SetDefaultProximityBuffer restores the default reward radius.
func (s *rewardsService) SetDefaultProximityBuffer() {
	s.bufferMu.Lock()
	defer s.bufferMu.Unlock()
	s.proximityBufferMiles = s.defaultBufferMiles
}

func (s *rewardsService) proximityBuffer() float64 {
	s.bufferMu.RLock()
	defer s.bufferMu.RUnlock()

	return s.proximityBufferMiles
}

// CalculateRewards evaluates the user's visit history against the
// attraction catalog and commits newly earned rewards, at most one per
// attraction for the user's lifetime.
//
// Two concurrent invocations for the same user must not interleave
// their check-then-commit sequences, otherwise both could observe "not
// yet rewarded" and double-credit an attraction. The per-user mutex
// spans the entire sequence; it is released on every exit path.
func (s *rewardsService) CalculateRewards(ctx context.Context, user *entity.User) error {
	lock := s.userLock(user)
	lock.Lock()
	defer lock.Unlock()

	visited := user.VisitedLocations()
	attractions, err := s.gps.Attractions(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to fetch attraction catalog")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	buffer := s.proximityBuffer()

	var staged []entity.UserReward
	for _, visitedLocation := range visited {
		for _, attraction := range attractions {
			if user.HasRewardFor(attraction.Name) || stagedContains(staged, attraction.Name) {
				continue
			}
			if geo.Distance(attraction.Location, visitedLocation.Location) > buffer {
				continue
			}

			points, err := s.rewardCentral.RewardPoints(ctx, attraction.ID, user.ID)
			if err != nil {
				// A transient points failure skips this attraction for
				// this invocation only; a later call retries it.
				logger.Warn("reward points lookup failed, skipping attraction",
					slog.String("user_id", user.ID.String()),
					slog.String("attraction", attraction.Name),
					slog.Any("error", err),
				)

				continue
			}

			staged = append(staged, entity.UserReward{
				VisitedLocation: visitedLocation,
				Attraction:      attraction,
				Points:          points,
			})
		}
	}

	var committed []entity.UserReward
	for _, reward := range staged {
		// AddReward re-checks by attraction name at commit time, so a
		// duplicate is dropped rather than double-credited.
		if user.AddReward(reward) {
			committed = append(committed, reward)
		}
	}

	s.publishRewards(ctx, user, committed)

	return nil
}

// IsWithinAttractionProximity reports whether a location falls inside
// the loose attraction proximity range.
func (s *rewardsService) IsWithinAttractionProximity(attraction entity.Attraction, location entity.Location) bool {
	return geo.Distance(attraction.Location, location) <= s.attractionProximityMiles
}

// RewardPoints returns the point value of an attraction for a user.
func (s *rewardsService) RewardPoints(ctx context.Context, attraction entity.Attraction, user *entity.User) (int, error) {
	points, err := s.rewardCentral.RewardPoints(ctx, attraction.ID, user.ID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch reward points")
	}

	return points, nil
}

func (s *rewardsService) userLock(user *entity.User) *sync.Mutex {
	if lock, ok := s.userLocks.Load(user.ID); ok {
		return lock.(*sync.Mutex)
	}
	lock, _ := s.userLocks.LoadOrStore(user.ID, &sync.Mutex{})

	return lock.(*sync.Mutex)
}

func stagedContains(staged []entity.UserReward, attractionName string) bool {
	for _, reward := range staged {
		if reward.Attraction.Name == attractionName {
			return true
		}
	}

	return false
}

// publishRewards emits one event per committed reward. Publishing is
// best effort; a broker failure never fails the attribution.
func (s *rewardsService) publishRewards(ctx context.Context, user *entity.User, rewards []entity.UserReward) {
	if s.publisher == nil || len(rewards) == 0 {
		return
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	for _, reward := range rewards {
		event := &service.RewardEvent{
			RequestID:      requestID,
			UserID:         user.ID.String(),
			AttractionID:   reward.Attraction.ID.String(),
			AttractionName: reward.Attraction.Name,
			Points:         reward.Points,
			Latitude:       reward.VisitedLocation.Location.Latitude,
			Longitude:      reward.VisitedLocation.Location.Longitude,
			VisitedAt:      reward.VisitedLocation.TimeVisited,
		}
		if err := s.publisher.PublishRewardEvent(ctx, event); err != nil {
			logger.Warn("failed to publish reward event",
				slog.String("user_id", user.ID.String()),
				slog.String("attraction", reward.Attraction.Name),
				slog.Any("error", err),
			)
		}
	}
}
