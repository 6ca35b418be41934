package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/phrazzld/storefront-api/internal/store"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput identifies an account by email or username.
type LoginInput struct {
	Email    string
	Username string
	Password string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token    string
	Identity domain.Identity
}

// AuthService registers accounts and logs them in.
type AuthService interface {
	// Register creates an account. Returns store.ErrUserExists when the email
	// or username is already taken.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Login verifies the password, issues a token and stores it on the
	// account, replacing any earlier one.
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authService struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.TokenService
	logger *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) (AuthService, error) {
	if users == nil || hasher == nil || tokens == nil {
		return nil, errors.New("auth service requires a user store, password hasher and token service")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "auth_service"),
	}, nil
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, domain.NewMissingFieldsError(missing...)
	}

	exists, err := s.users.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if exists {
		log.Debug("registration rejected: account exists")
		return nil, store.ErrUserExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(in.Username, in.Email, hash, time.Now())
	if err != nil {
		return nil, err
	}

	// A concurrent registration can still win the race; Create then reports
	// store.ErrUserExists from the unique constraint.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if (in.Email == "" && in.Username == "") || in.Password == "" {
		return nil, &domain.ValidationError{
			Fields:  []string{"email", "username", "password"},
			Message: "Email/username and password are required",
			Err:     domain.ErrValidation,
		}
	}

	user, err := s.users.FindByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			identifier := in.Email
			if identifier == "" {
				identifier = in.Username
			}
			return nil, &AccountNotFoundError{Identifier: identifier}
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	ok, err := s.hasher.Verify(in.Password, user.HashedPassword)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug("login rejected: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(ctx, user.Email, user.Username)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateToken(ctx, user.ID, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("freshly issued token failed validation: %w", err)
	}
	identity, err := claims.Identity()
	if err != nil {
		return nil, fmt.Errorf("freshly issued token has bad payload: %w", err)
	}

	log.Info("user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, Identity: identity}, nil
}
