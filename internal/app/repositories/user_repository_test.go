package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
)

func userColumns() []string {
	return []string{"id", "email", "password", "first_name", "last_name", "is_staff", "created_at"}
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	user := &models.User{
		Email:     "ada@example.com",
		Password:  "hashed",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("ada@example.com", "hashed", "Ada", "Lovelace", false).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		id, err := repo.Create(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("ada@example.com", "hashed", "Ada", "Lovelace", false).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := repo.Create(ctx, user)
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns()).
			AddRow(int64(1), "ada@example.com", "hashed", "Ada", "Lovelace", true, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
			WithArgs("ada@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.True(t, user.IsStaff)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
			WithArgs("ghost@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns()))

		_, err := repo.GetByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
