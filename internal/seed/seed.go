package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/ozgur/notesphere/internal/app/models"
	appRepos "github.com/ozgur/notesphere/internal/app/repositories"
	"github.com/ozgur/notesphere/internal/config"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
	pkgAuth "github.com/ozgur/notesphere/internal/pkg/auth"
)

// CreateDefaultData ensures a staff account exists so notes can be uploaded
// on a fresh install. Regular registration never grants staff rights.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.StaffEmail == "" || cfg.Seed.StaffPassword == "" {
		lgr.Info().Msg("No seed staff account configured, skipping")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	hashed, err := pkgAuth.HashPassword(cfg.Seed.StaffPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing seed staff password")
		return err
	}

	staff := &appModels.User{
		Email:     cfg.Seed.StaffEmail,
		Password:  hashed,
		FirstName: "Site",
		LastName:  "Admin",
		IsStaff:   true,
	}

	_, err = userRepo.Create(ctx, staff)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Str("email", cfg.Seed.StaffEmail).Msg("Seed staff account already exists, skipping")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating seed staff account")
		return err
	}

	lgr.Info().Str("email", cfg.Seed.StaffEmail).Msg("Seed staff account created")
	return nil
}
