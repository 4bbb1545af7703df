package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
)

func noteDetailColumns() []string {
	return []string{
		"id", "title", "file_path", "chapter_id", "chapter_name",
		"subject_id", "subject_name", "year", "is_quantum",
		"uploaded_by", "uploader_first_name", "uploader_last_name",
		"upload_date",
	}
}

func addNoteDetailRow(rows *pgxmock.Rows, id int64, title string, uploaded time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, title, "notes/file.pdf", int64(10), "Waves",
		int64(5), "Physics", 2, false,
		int64(1), "Ada", "Lovelace",
		uploaded,
	)
}

func TestNoteRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNoteRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notes")).
		WithArgs(int64(10), "Wave Mechanics", "notes/file.pdf", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.Create(context.Background(), &models.Note{
		ChapterID:  10,
		Title:      "Wave Mechanics",
		FilePath:   "notes/file.pdf",
		UploadedBy: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNoteRepository(mock)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := addNoteDetailRow(pgxmock.NewRows(noteDetailColumns()), 42, "Wave Mechanics", time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE n.id = $1")).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		note, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "Wave Mechanics", note.Title)
		assert.Equal(t, "Physics", note.SubjectName)
		assert.Equal(t, "Waves", note.ChapterName)
		assert.Equal(t, 2, note.Year)
		assert.Equal(t, "Ada", note.UploaderFirstName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE n.id = $1")).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows(noteDetailColumns()))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNoteRepository(mock)

	now := time.Now()
	rows := pgxmock.NewRows(noteDetailColumns())
	rows = addNoteDetailRow(rows, 2, "Newer", now)
	rows = addNoteDetailRow(rows, 1, "Older", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY n.upload_date DESC LIMIT 5")).
		WillReturnRows(rows)

	notes, err := repo.GetRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Newer", notes[0].Title)
	assert.Equal(t, "Older", notes[1].Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetBySubjectID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNoteRepository(mock)

	rows := addNoteDetailRow(pgxmock.NewRows(noteDetailColumns()), 1, "Chapter Notes", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.subject_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	notes, err := repo.GetBySubjectID(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, int64(5), notes[0].SubjectID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewNoteRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE id = $1")).
			WithArgs(int64(42)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(ctx, 42))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE id = $1")).
			WithArgs(int64(99)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), apperrors.ErrNoteNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
