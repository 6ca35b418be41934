package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
)

const userColumns = `id, username, email, password, token, created_at, updated_at`

// PostgresUserStore implements store.UserStore on PostgreSQL.
type PostgresUserStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresUserStore creates a user store on db. If logger is nil the
// default logger is used.
func NewPostgresUserStore(db *sql.DB, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO users (username, email, password, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("user already exists", slog.String("username", user.Username))
			return store.ErrUserExists
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create user: %w", MapError(err))
	}

	log.Info("user created", slog.Int64("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// FindByEmailOrUsername implements store.UserStore.FindByEmailOrUsername.
func (s *PostgresUserStore) FindByEmailOrUsername(
	ctx context.Context,
	email, username string,
) (*domain.User, error) {
	if email == "" && username == "" {
		return nil, store.ErrUserNotFound
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND username = $2)
		ORDER BY id
		LIMIT 1
	`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, email, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ExistsByEmailOrUsername implements store.UserStore.ExistsByEmailOrUsername.
func (s *PostgresUserStore) ExistsByEmailOrUsername(
	ctx context.Context,
	email, username string,
) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 OR username = $2)`
	if err := s.db.QueryRowContext(ctx, query, email, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// List implements store.UserStore.List.
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// UpdateUsername implements store.UserStore.UpdateUsername.
func (s *PostgresUserStore) UpdateUsername(ctx context.Context, id int64, username string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE users SET username = $1, updated_at = NOW() WHERE id = $2`
	result, err := s.db.ExecContext(ctx, query, username, id)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrUserExists
		}
		log.Error("failed to update username",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to update user: %w", MapError(err))
	}
	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// UpdateToken implements store.UserStore.UpdateToken.
func (s *PostgresUserStore) UpdateToken(ctx context.Context, id int64, token string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE users SET token = $1 WHERE id = $2`, token, id)
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return CheckRowsAffected(result, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete.
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx = logger.WithLogger(ctx, log)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return deleteAndRenumber(ctx, tx, "users", id, store.ErrUserNotFound)
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to delete user",
				slog.Int64("user_id", id),
				slog.String("error", err.Error()))
		}
		return err
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Token,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
