package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgur/notesphere/internal/app/models/dto"
	"github.com/ozgur/notesphere/internal/app/repositories"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
	"github.com/ozgur/notesphere/internal/pkg/auth"
)

func newAuthTestService(t *testing.T) (AuthService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "notesphere.test",
	})

	svc := NewAuthService(repositories.NewUserRepository(mock), jwtService, zerolog.Nop())
	return svc, mock
}

func TestAuthService_Register(t *testing.T) {
	svc, mock := newAuthTestService(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("ada@example.com", pgxmock.AnyArg(), "Ada", "Lovelace", false).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:     "Ada@Example.com",
			Password:  "Sup3rSecret",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.User.ID)
		assert.Equal(t, "ada@example.com", resp.User.Email)
		assert.False(t, resp.User.IsStaff)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.Equal(t, "Bearer", resp.Token.TokenType)
	})

	t.Run("WeakPassword", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:     "ada@example.com",
			Password:  "short",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		assert.ErrorIs(t, err, ErrAuthValidation)
	})

	t.Run("PasswordWithoutDigit", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:     "ada@example.com",
			Password:  "onlyletters",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		assert.ErrorIs(t, err, ErrAuthValidation)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("ada@example.com", pgxmock.AnyArg(), "Ada", "Lovelace", false).
			WillReturnError(apperrors.ErrEmailAlreadyExists)

		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:     "ada@example.com",
			Password:  "Sup3rSecret",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		assert.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login(t *testing.T) {
	svc, mock := newAuthTestService(t)
	ctx := context.Background()

	hashed, err := auth.HashPassword("Sup3rSecret")
	require.NoError(t, err)

	userRows := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{"id", "email", "password", "first_name", "last_name", "is_staff", "created_at"}).
			AddRow(int64(1), "ada@example.com", hashed, "Ada", "Lovelace", true, time.Now())
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
			WithArgs("ada@example.com").
			WillReturnRows(userRows())

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "Sup3rSecret"})
		require.NoError(t, err)
		assert.True(t, resp.User.IsStaff)
		assert.NotEmpty(t, resp.Token.AccessToken)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
			WithArgs("ada@example.com").
			WillReturnRows(userRows())

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
			WithArgs("ghost@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password", "first_name", "last_name", "is_staff", "created_at"}))

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "Sup3rSecret"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
