package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
	"github.com/ozgur/notesphere/internal/pkg/logger"
)

// NoteDetails includes detailed information about a note, joining its
// chapter, subject and uploader. Year and quantum status are derived here:
// the notes table stores neither.
type NoteDetails struct {
	ID                int64     `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	FilePath          string    `db:"file_path" json:"filePath"`
	ChapterID         int64     `db:"chapter_id" json:"chapterId"`
	ChapterName       string    `db:"chapter_name" json:"chapterName"`
	SubjectID         int64     `db:"subject_id" json:"subjectId"`
	SubjectName       string    `db:"subject_name" json:"subjectName"`
	Year              int       `db:"year" json:"year"`
	IsQuantum         bool      `db:"is_quantum" json:"isQuantum"`
	UploadedBy        int64     `db:"uploaded_by" json:"uploadedBy"`
	UploaderFirstName string    `db:"uploader_first_name" json:"uploaderFirstName"`
	UploaderLastName  string    `db:"uploader_last_name" json:"uploaderLastName"`
	UploadDate        time.Time `db:"upload_date" json:"uploadDate"`
}

// NoteRepository handles database operations for Note.
type NoteRepository struct {
	db PgxPool
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db PgxPool) *NoteRepository {
	return &NoteRepository{db: db}
}

// Common select query builder for notes with joins
func (r *NoteRepository) selectNoteDetailsQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"n.id", "n.title", "n.file_path", "n.chapter_id", "c.name as chapter_name",
		"s.id as subject_id", "s.name as subject_name", "s.year", "s.is_quantum",
		"n.uploaded_by", "u.first_name as uploader_first_name", "u.last_name as uploader_last_name",
		"n.upload_date",
	).From("notes n").
		Join("chapters c ON n.chapter_id = c.id").
		Join("subjects s ON c.subject_id = s.id").
		Join("users u ON n.uploaded_by = u.id").
		PlaceholderFormat(squirrel.Dollar)
}

// ScanNoteDetails scans a row into a NoteDetails struct.
func ScanNoteDetails(row pgx.Row) (*NoteDetails, error) {
	var note NoteDetails
	err := row.Scan(
		&note.ID, &note.Title, &note.FilePath, &note.ChapterID, &note.ChapterName,
		&note.SubjectID, &note.SubjectName, &note.Year, &note.IsQuantum,
		&note.UploadedBy, &note.UploaderFirstName, &note.UploaderLastName,
		&note.UploadDate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Msg("Error scanning note details")
		return nil, err
	}
	return &note, nil
}

// Create inserts a new note. The upload timestamp is assigned by the server.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) (int64, error) {
	sql, args, err := squirrel.Insert("notes").
		Columns("chapter_id", "title", "file_path", "uploaded_by").
		Values(note.ChapterID, note.Title, note.FilePath, note.UploadedBy).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create note SQL")
		return 0, err
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create note query")
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a single note by its ID with details.
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*NoteDetails, error) {
	sqlStr, args, err := r.selectNoteDetailsQuery().Where(squirrel.Eq{"n.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get note by ID SQL")
		return nil, err
	}

	return ScanNoteDetails(r.db.QueryRow(ctx, sqlStr, args...))
}

func (r *NoteRepository) queryNoteDetails(ctx context.Context, sqlBuilder squirrel.SelectBuilder) ([]*NoteDetails, error) {
	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building note details SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing note details query")
		return nil, err
	}
	defer rows.Close()

	notes := make([]*NoteDetails, 0)
	for rows.Next() {
		note, err := ScanNoteDetails(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating through note rows")
		return nil, err
	}

	return notes, nil
}

// GetRecent retrieves the most recently uploaded notes system-wide,
// regardless of subject, year or quantum status.
func (r *NoteRepository) GetRecent(ctx context.Context, limit uint64) ([]*NoteDetails, error) {
	return r.queryNoteDetails(ctx, r.selectNoteDetailsQuery().
		OrderBy("n.upload_date DESC").
		Limit(limit))
}

// GetBySubjectID retrieves every note under a subject via its chapters,
// newest first.
func (r *NoteRepository) GetBySubjectID(ctx context.Context, subjectID int64) ([]*NoteDetails, error) {
	return r.queryNoteDetails(ctx, r.selectNoteDetailsQuery().
		Where(squirrel.Eq{"c.subject_id": subjectID}).
		OrderBy("n.upload_date DESC"))
}

// GetQuantumByYear pools the notes of all quantum subjects in one year,
// newest first.
func (r *NoteRepository) GetQuantumByYear(ctx context.Context, year int) ([]*NoteDetails, error) {
	return r.queryNoteDetails(ctx, r.selectNoteDetailsQuery().
		Where(squirrel.Eq{"s.is_quantum": true, "s.year": year}).
		OrderBy("n.upload_date DESC"))
}

// Delete deletes a note row by its ID.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("notes").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete note SQL")
		return err
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete note query")
		return err
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}
