package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tourguide/config"
	"tourguide/internal/domain/entity"
	"tourguide/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepositoryForTest(t *testing.T, testData *config.TestDataConfig) repository.UserRepository {
	t.Helper()

	cfg := &config.Config{}
	cfg.TestData = testData

	return NewUserRepository(UserRepositoryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := newRepositoryForTest(t, nil)
	ctx := context.Background()

	user := entity.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	require.NoError(t, repo.Create(ctx, user))

	byName, err := repo.FindByName(ctx, "jon")
	require.NoError(t, err)
	assert.Same(t, user, byName)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Same(t, user, byID)
}

func TestUserRepository_FindUnknownUser(t *testing.T) {
	repo := newRepositoryForTest(t, nil)
	ctx := context.Background()

	_, err := repo.FindByName(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateTakenNameIsNoOp(t *testing.T) {
	repo := newRepositoryForTest(t, nil)
	ctx := context.Background()

	original := entity.NewUser(uuid.New(), "jon", "000", "jon@tourguide.com")
	require.NoError(t, repo.Create(ctx, original))

	imposter := entity.NewUser(uuid.New(), "jon", "111", "other@tourguide.com")
	require.NoError(t, repo.Create(ctx, imposter))

	found, err := repo.FindByName(ctx, "jon")
	require.NoError(t, err)
	assert.Same(t, original, found)
}

func TestUserRepository_SeedsInternalUsers(t *testing.T) {
	repo := newRepositoryForTest(t, &config.TestDataConfig{Enabled: true, InternalUserCount: 25})
	ctx := context.Background()

	users, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 25)

	user, err := repo.FindByName(ctx, "internalUser0")
	require.NoError(t, err)
	history := user.VisitedLocations()
	assert.Len(t, history, 3)
	for _, visited := range history {
		assert.Equal(t, user.ID, visited.UserID)
		assert.GreaterOrEqual(t, visited.Location.Latitude, -90.0)
		assert.LessOrEqual(t, visited.Location.Latitude, 90.0)
		assert.GreaterOrEqual(t, visited.Location.Longitude, -180.0)
		assert.LessOrEqual(t, visited.Location.Longitude, 180.0)
	}
}
