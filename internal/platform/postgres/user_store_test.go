package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{"id", "username", "email", "password", "token", "created_at", "updated_at"}

func newUserStore(t *testing.T) (*PostgresUserStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresUserStore(db, nil), mock
}

func TestPostgresUserStore_Create(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("assigns id", func(t *testing.T) {
		t.Parallel()
		s, mock := newUserStore(t)
		user, err := domain.NewUser("ada", "ada@example.com", "$2a$10$hash", created)
		require.NoError(t, err)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("ada", "ada@example.com", "$2a$10$hash", created).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		require.NoError(t, s.Create(context.Background(), user))
		assert.Equal(t, int64(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()
		s, mock := newUserStore(t)
		user, err := domain.NewUser("ada", "ada@example.com", "$2a$10$hash", created)
		require.NoError(t, err)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"})

		assert.ErrorIs(t, s.Create(context.Background(), user), store.ErrUserExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserStore_FindByEmailOrUsername(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	token := "header.payload.sig"

	t.Run("match by username", func(t *testing.T) {
		t.Parallel()
		s, mock := newUserStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND username = $2)")).
			WithArgs("", "ada").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(int64(1), "ada", "ada@example.com", "$2a$10$hash", token, created, nil))

		user, err := s.FindByEmailOrUsername(context.Background(), "", "ada")
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		require.NotNil(t, user.Token)
		assert.Equal(t, token, *user.Token)
		assert.Nil(t, user.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		s, mock := newUserStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
			WithArgs("nobody@example.com", "").
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := s.FindByEmailOrUsername(context.Background(), "nobody@example.com", "")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("both empty never queries", func(t *testing.T) {
		t.Parallel()
		s, mock := newUserStore(t)
		_, err := s.FindByEmailOrUsername(context.Background(), "", "")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserStore_ExistsByEmailOrUsername(t *testing.T) {
	t.Parallel()

	s, mock := newUserStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("ada@example.com", "ada").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.ExistsByEmailOrUsername(context.Background(), "ada@example.com", "ada")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserStore_List(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	s, mock := newUserStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(1), "ada", "ada@example.com", "h1", nil, created, nil).
			AddRow(int64(2), "bob", "bob@example.com", "h2", nil, created, updated))

	users, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Nil(t, users[0].Token)
	require.NotNil(t, users[1].UpdatedAt)
	assert.True(t, updated.Equal(*users[1].UpdatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserStore_UpdateUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  func(e *sqlmock.ExpectedExec)
		wantErr error
	}{
		{
			name:   "updated",
			result: func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 1)) },
		},
		{
			name:    "missing user",
			result:  func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) },
			wantErr: store.ErrUserNotFound,
		},
		{
			name: "username taken",
			result: func(e *sqlmock.ExpectedExec) {
				e.WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			wantErr: store.ErrUserExists,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, mock := newUserStore(t)
			tc.result(mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET username = $1, updated_at = NOW()")).
				WithArgs("grace", int64(7)))

			err := s.UpdateUsername(context.Background(), 7, "grace")
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresUserStore_UpdateToken(t *testing.T) {
	t.Parallel()

	s, mock := newUserStore(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET token = $1 WHERE id = $2")).
		WithArgs("tok", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateToken(context.Background(), 3, "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserStore_Delete(t *testing.T) {
	t.Parallel()

	t.Run("renumbers", func(t *testing.T) {
		t.Parallel()
		s, mock := newUserStore(t)
		mock.ExpectBegin()
		expectRenumber(mock, "users", 2, 3)
		mock.ExpectCommit()

		require.NoError(t, s.Delete(context.Background(), 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock failure", func(t *testing.T) {
		t.Parallel()
		s, mock := newUserStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("LOCK TABLE users")).WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		err := s.Delete(context.Background(), 2)
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
