package store

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create inserts user and sets user.ID.
	// Returns ErrUserExists if the username or email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID returns ErrUserNotFound if no user has the given id.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// FindByEmailOrUsername returns the first user whose email equals email
	// or whose username equals username. Empty arguments never match.
	// Returns ErrUserNotFound if nobody matches.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)

	// ExistsByEmailOrUsername reports whether any user has the given email
	// or the given username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// List returns every user ordered by id.
	List(ctx context.Context) ([]domain.User, error)

	// UpdateUsername changes the username and stamps updated_at.
	// Returns ErrUserNotFound or ErrUserExists.
	UpdateUsername(ctx context.Context, id int64, username string) error

	// UpdateToken stores the most recently issued bearer token for the user.
	UpdateToken(ctx context.Context, id int64, token string) error

	// Delete removes the user and shifts every higher id down by one so the
	// ids stay contiguous, then resets the id sequence. All of it happens in
	// one transaction. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error
}
