package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPool is the subset of pgxpool.Pool the repositories use. Satisfied by
// *pgxpool.Pool in production and by pgxmock in tests.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var _ PgxPool = (*pgxpool.Pool)(nil)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	SubjectRepository *SubjectRepository
	ChapterRepository *ChapterRepository
	NoteRepository    *NoteRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db PgxPool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		SubjectRepository: NewSubjectRepository(db),
		ChapterRepository: NewChapterRepository(db),
		NoteRepository:    NewNoteRepository(db),
	}
}
