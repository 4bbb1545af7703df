package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
	"github.com/ozgur/notesphere/internal/pkg/dberrors"
	"github.com/ozgur/notesphere/internal/pkg/logger"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db PgxPool
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db PgxPool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) selectUserQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "email", "password", "first_name", "last_name", "is_staff", "created_at").
		From("users").
		PlaceholderFormat(squirrel.Dollar)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.IsStaff, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user")
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := squirrel.Insert("users").
		Columns("email", "password", "first_name", "last_name", "is_staff").
		Values(user.Email, user.Password, user.FirstName, user.LastName, user.IsStaff).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, err
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, err
	}

	return id, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sqlStr, args...))
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sqlStr, args...))
}
