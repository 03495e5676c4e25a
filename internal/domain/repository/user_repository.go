// Package repository defines the interfaces for the user directory.
// These interfaces act as a contract between the domain/application
// layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tourguide/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for the user directory.
// The application layer depends on this interface, not the concrete
// implementation; the reference deployment keeps users in memory.
type UserRepository interface {
	// FindByName retrieves a single user by their unique user name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// All returns every user currently known to the directory.
	All(ctx context.Context) ([]*entity.User, error)

	// Create adds a new user to the directory. Adding a user whose name
	// is already taken is a no-op.
	Create(ctx context.Context, user *entity.User) error
}
