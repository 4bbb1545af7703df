package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
	"github.com/ozgur/notesphere/internal/pkg/logger"
)

// SubjectRepository handles database operations for Subject.
type SubjectRepository struct {
	db PgxPool
}

// NewSubjectRepository creates a new instance of SubjectRepository.
func NewSubjectRepository(db PgxPool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) selectSubjectQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "name", "year", "is_quantum", "image_path", "created_at").
		From("subjects").
		PlaceholderFormat(squirrel.Dollar)
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var subject models.Subject
	err := row.Scan(
		&subject.ID, &subject.Name, &subject.Year, &subject.IsQuantum,
		&subject.ImagePath, &subject.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Msg("Error scanning subject")
		return nil, err
	}
	return &subject, nil
}

// GetOrCreate resolves the subject identified by (name, year, isQuantum),
// creating it when absent. The unique constraint on that triple makes the
// upsert safe under concurrent uploads: racing requests converge on one row.
func (r *SubjectRepository) GetOrCreate(ctx context.Context, name string, year int, isQuantum bool) (*models.Subject, error) {
	sql, args, err := squirrel.Insert("subjects").
		Columns("name", "year", "is_quantum").
		Values(name, year, isQuantum).
		Suffix("ON CONFLICT (name, year, is_quantum) DO UPDATE SET name = EXCLUDED.name").
		Suffix("RETURNING id, name, year, is_quantum, image_path, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get-or-create subject SQL")
		return nil, err
	}

	row := r.db.QueryRow(ctx, sql, args...)
	subject, err := scanSubject(row)
	if err != nil {
		logger.Error().Err(err).Str("subject", name).Int("year", year).Msg("Error executing get-or-create subject query")
		return nil, err
	}
	return subject, nil
}

// GetByID retrieves a single subject by its ID.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	sqlStr, args, err := r.selectSubjectQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subject by ID SQL")
		return nil, err
	}

	return scanSubject(r.db.QueryRow(ctx, sqlStr, args...))
}

// GetByYear retrieves the subjects of one academic year on one side of the
// quantum partition, ordered by name.
func (r *SubjectRepository) GetByYear(ctx context.Context, year int, isQuantum bool) ([]*models.Subject, error) {
	sqlStr, args, err := r.selectSubjectQuery().
		Where(squirrel.Eq{"year": year, "is_quantum": isQuantum}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subjects by year SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get subjects by year query")
		return nil, err
	}
	defer rows.Close()

	subjects := make([]*models.Subject, 0)
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating through subject rows")
		return nil, err
	}

	return subjects, nil
}

// GetQuantumYears returns the distinct years that have at least one quantum
// subject, ascending.
func (r *SubjectRepository) GetQuantumYears(ctx context.Context) ([]int, error) {
	sqlStr, args, err := squirrel.Select("DISTINCT year").
		From("subjects").
		Where(squirrel.Eq{"is_quantum": true}).
		OrderBy("year ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building quantum years SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing quantum years query")
		return nil, err
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			logger.Error().Err(err).Msg("Error scanning quantum year")
			return nil, err
		}
		years = append(years, year)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating through quantum year rows")
		return nil, err
	}

	return years, nil
}

// UpdateImage attaches or overwrites the subject image path.
func (r *SubjectRepository) UpdateImage(ctx context.Context, id int64, imagePath string) error {
	sql, args, err := squirrel.Update("subjects").
		Set("image_path", imagePath).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update subject image SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update subject image query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}
