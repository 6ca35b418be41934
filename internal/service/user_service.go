package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
)

// UserService administers existing accounts.
type UserService interface {
	// List returns every account as a summary, ordered by id.
	List(ctx context.Context) ([]domain.UserSummary, error)

	// UpdateUsername renames an account; the email never changes.
	UpdateUsername(ctx context.Context, id int64, username string) error

	// Delete removes an account and renumbers the ones after it.
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(users store.UserStore, logger *slog.Logger) (UserService, error) {
	if users == nil {
		return nil, errors.New("user service requires a user store")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		users:  users,
		logger: logger.With("component", "user_service"),
	}, nil
}

func (s *userService) List(ctx context.Context) ([]domain.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

func (s *userService) UpdateUsername(ctx context.Context, id int64, username string) error {
	if username == "" {
		return &domain.ValidationError{
			Fields:  []string{"username"},
			Message: "Username is required",
			Err:     domain.ErrValidation,
		}
	}

	if err := s.users.UpdateUsername(ctx, id, username); err != nil {
		return fmt.Errorf("failed to update user %d: %w", id, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("username updated", "user_id", id)
	return nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
