package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
	"github.com/ozgur/notesphere/internal/pkg/logger"
)

// ChapterRepository handles database operations for Chapter.
type ChapterRepository struct {
	db PgxPool
}

// NewChapterRepository creates a new instance of ChapterRepository.
func NewChapterRepository(db PgxPool) *ChapterRepository {
	return &ChapterRepository{db: db}
}

func scanChapter(row pgx.Row) (*models.Chapter, error) {
	var chapter models.Chapter
	err := row.Scan(
		&chapter.ID, &chapter.SubjectID, &chapter.Name, &chapter.ImagePath, &chapter.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrChapterNotFound
		}
		logger.Error().Err(err).Msg("Error scanning chapter")
		return nil, err
	}
	return &chapter, nil
}

// GetOrCreate resolves the chapter named name within the subject, creating it
// when absent. Uniqueness of (subject_id, name) keeps racing uploads on the
// same row.
func (r *ChapterRepository) GetOrCreate(ctx context.Context, subjectID int64, name string) (*models.Chapter, error) {
	sql, args, err := squirrel.Insert("chapters").
		Columns("subject_id", "name").
		Values(subjectID, name).
		Suffix("ON CONFLICT (subject_id, name) DO UPDATE SET name = EXCLUDED.name").
		Suffix("RETURNING id, subject_id, name, image_path, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get-or-create chapter SQL")
		return nil, err
	}

	chapter, err := scanChapter(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("chapter", name).Int64("subjectID", subjectID).Msg("Error executing get-or-create chapter query")
		return nil, err
	}
	return chapter, nil
}

// GetByID retrieves a single chapter by its ID.
func (r *ChapterRepository) GetByID(ctx context.Context, id int64) (*models.Chapter, error) {
	sqlStr, args, err := squirrel.Select("id", "subject_id", "name", "image_path", "created_at").
		From("chapters").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get chapter by ID SQL")
		return nil, err
	}

	return scanChapter(r.db.QueryRow(ctx, sqlStr, args...))
}

// UpdateImage attaches or overwrites the chapter image path.
func (r *ChapterRepository) UpdateImage(ctx context.Context, id int64, imagePath string) error {
	sql, args, err := squirrel.Update("chapters").
		Set("image_path", imagePath).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update chapter image SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing update chapter image query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChapterNotFound
	}

	return nil
}
