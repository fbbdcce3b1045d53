package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/services/user/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Save persists a new user. Returns ErrEmailAlreadyExists when the email
	// unique constraint is violated.
	Save(ctx context.Context, user *models.User) error

	// Update persists changes to an existing user. Returns
	// ErrEmailAlreadyExists on a unique constraint violation.
	Update(ctx context.Context, user *models.User) error

	// GetByID returns ErrUserNotFound when no user matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindAll returns every user. Order is unspecified.
	FindAll(ctx context.Context) ([]*models.User, error)

	// Delete removes a user by id. Deleting an absent user is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
