package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// TokenChecker confirms that a validated token is still the latest one
// stored for its account.
type TokenChecker interface {
	CheckLatest(ctx context.Context, token string, identity domain.Identity) error
}

type latestTokenChecker struct {
	users store.UserStore
}

// NewTokenChecker creates a TokenChecker backed by the user store.
func NewTokenChecker(users store.UserStore) TokenChecker {
	return &latestTokenChecker{users: users}
}

// CheckLatest returns ErrTokenRevoked when the account no longer exists or
// holds a different token.
func (c *latestTokenChecker) CheckLatest(ctx context.Context, token string, identity domain.Identity) error {
	user, err := c.users.FindByEmailOrUsername(ctx, identity.Email, "")
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrTokenRevoked
		}
		return fmt.Errorf("failed to load token owner: %w", err)
	}
	if user.Token == nil || subtle.ConstantTimeCompare([]byte(*user.Token), []byte(token)) != 1 {
		return ErrTokenRevoked
	}
	return nil
}
