package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgur/notesphere/internal/pkg/apperrors"
)

func subjectColumns() []string {
	return []string{"id", "name", "year", "is_quantum", "image_path", "created_at"}
}

func TestSubjectRepository_GetOrCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubjectRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("CreatesWhenAbsent", func(t *testing.T) {
		rows := pgxmock.NewRows(subjectColumns()).
			AddRow(int64(1), "Physics", 2, false, nil, now)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subjects")).
			WithArgs("Physics", 2, false).
			WillReturnRows(rows)

		subject, err := repo.GetOrCreate(ctx, "Physics", 2, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), subject.ID)
		assert.Equal(t, "Physics", subject.Name)
		assert.Equal(t, 2, subject.Year)
		assert.False(t, subject.IsQuantum)
	})

	t.Run("ReturnsExistingRowOnConflict", func(t *testing.T) {
		// The upsert returns the pre-existing row when the triple matches
		rows := pgxmock.NewRows(subjectColumns()).
			AddRow(int64(7), "Physics", 2, true, nil, now)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subjects")).
			WithArgs("Physics", 2, true).
			WillReturnRows(rows)

		subject, err := repo.GetOrCreate(ctx, "Physics", 2, true)
		require.NoError(t, err)
		assert.Equal(t, int64(7), subject.ID)
		assert.True(t, subject.IsQuantum)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubjectRepository(mock)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := pgxmock.NewRows(subjectColumns()).
			AddRow(int64(3), "Algebra", 1, false, nil, time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, year, is_quantum, image_path, created_at FROM subjects WHERE id = $1")).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		subject, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Algebra", subject.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, year, is_quantum, image_path, created_at FROM subjects WHERE id = $1")).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows(subjectColumns()))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepository_GetByYear(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubjectRepository(mock)
	ctx := context.Background()
	now := time.Now()

	rows := pgxmock.NewRows(subjectColumns()).
		AddRow(int64(1), "Algebra", 2, false, nil, now).
		AddRow(int64(2), "Physics", 2, false, nil, now)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY name ASC")).
		WillReturnRows(rows)

	subjects, err := repo.GetByYear(ctx, 2, false)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Algebra", subjects[0].Name)
	assert.Equal(t, "Physics", subjects[1].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepository_GetQuantumYears(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubjectRepository(mock)

	rows := pgxmock.NewRows([]string{"year"}).
		AddRow(1).
		AddRow(3)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT year FROM subjects")).
		WithArgs(true).
		WillReturnRows(rows)

	years, err := repo.GetQuantumYears(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, years)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepository_UpdateImage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubjectRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE subjects SET image_path = $1 WHERE id = $2")).
			WithArgs("subjects/img.png", int64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateImage(ctx, 3, "subjects/img.png"))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE subjects SET image_path = $1 WHERE id = $2")).
			WithArgs("subjects/img.png", int64(99)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.UpdateImage(ctx, 99, "subjects/img.png"), apperrors.ErrSubjectNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
