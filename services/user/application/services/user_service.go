package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/services/user/domain/models"
	"github.com/ghuser/shareit/services/user/domain/repositories"
)

// UserService orchestrates user directory operations. Email uniqueness is
// enforced at save time by the repository; there is no separate pre-check.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService returns a UserService wired with the given repository.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create persists a new user.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	user := models.NewUser(name, email)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Update applies a partial patch to an existing user. Unset fields keep their
// current value.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, name, email *string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.Patch(name, email)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes a user. Deleting an absent user succeeds.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
