// Package memory provides the in-memory user directory used by the
// reference deployment. Users live for the process lifetime.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

// UserRepositoryParams holds dependencies for the user repository, injected by Fx.
type UserRepositoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository creates the in-memory user directory, seeding
// internal test users when test data is enabled.
func NewUserRepository(params UserRepositoryParams) repository.UserRepository {
	repo := &userRepository{
		users: make(map[string]*entity.User),
	}

	if params.Config.TestData != nil && params.Config.TestData.Enabled {
		count := params.Config.TestData.InternalUserCount
		repo.seedInternalUsers(count)
		params.Logger.Info("Seeded internal test users", slog.Int("count", count))
	}

	return repo
}

// FindByName retrieves a single user by their unique user name.
func (r *userRepository) FindByName(_ context.Context, name string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[name]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

// FindByID retrieves a single user by their unique ID.
func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// All returns every user currently known to the directory.
func (r *userRepository) All(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}

	return users, nil
}

// Create adds a new user; a taken user name is a no-op.
func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Name]; exists {
		return nil
	}
	r.users[user.Name] = user

	return nil
}

// seedInternalUsers populates the directory with users carrying three
// random historical visits each.
func (r *userRepository) seedInternalUsers(count int) {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("internalUser%d", i)
		user := entity.NewUser(uuid.New(), name, "000", name+"@tourguide.com")

		for j := 0; j < 3; j++ {
			user.AddVisitedLocation(entity.VisitedLocation{
				UserID: user.ID,
				Location: entity.Location{
					Latitude:  -90 + rnd.Float64()*180,
					Longitude: -180 + rnd.Float64()*360,
				},
				TimeVisited: time.Now().UTC().AddDate(0, 0, -rnd.Intn(30)),
			})
		}

		r.users[name] = user
	}
}
