package user

import (
	"context"
	"fmt"

	"zyppr/database/repository"
	"zyppr/models"
)

// UpdateProfile overwrites the customer profile fields of the given user.
// Owner profiles are maintained through business mutations instead.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, profile models.CustomerProfile) (*models.User, error) {
	users, err := s.Users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for i := range users {
		if users[i].ID != userID || users[i].Role != models.RoleCustomer {
			continue
		}
		users[i].Customer = &profile
		if err := s.Users.ReplaceAll(ctx, users); err != nil {
			return nil, fmt.Errorf("failed to persist profile: %w", err)
		}
		updated := users[i]
		return &updated, nil
	}
	return nil, ErrUserNotFound
}

// GetByID resolves an account by id.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}
