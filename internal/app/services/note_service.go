package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/app/models/dto"
	"github.com/ozgur/notesphere/internal/app/repositories"
	"github.com/ozgur/notesphere/internal/pkg/apperrors"
	"github.com/ozgur/notesphere/internal/pkg/filestorage"
	"github.com/ozgur/notesphere/internal/pkg/logger"
)

// NoteUpload carries everything a note submission contains: the form fields,
// the required note file and the optional subject/chapter images.
type NoteUpload struct {
	Request      *dto.CreateNoteRequest
	File         *multipart.FileHeader
	SubjectImage *multipart.FileHeader
	ChapterImage *multipart.FileHeader
}

// NoteService defines the write side: uploading and deleting notes.
// Regular and quantum uploads are the same operation parameterized by the
// quantum flag; the two entry points must never drift apart.
type NoteService interface {
	CreateNote(ctx context.Context, upload *NoteUpload, isQuantum bool, userID int64) (*dto.NoteResponse, error)
	DeleteNote(ctx context.Context, id int64) (*dto.DeleteNoteResponse, error)
}

// noteServiceImpl implements NoteService
type noteServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
	chapterRepo *repositories.ChapterRepository
	noteRepo    *repositories.NoteRepository
	storage     filestorage.Storage
}

// NewNoteService creates a new NoteService
func NewNoteService(
	subjectRepo *repositories.SubjectRepository,
	chapterRepo *repositories.ChapterRepository,
	noteRepo *repositories.NoteRepository,
	storage filestorage.Storage,
) NoteService {
	return &noteServiceImpl{
		subjectRepo: subjectRepo,
		chapterRepo: chapterRepo,
		noteRepo:    noteRepo,
		storage:     storage,
	}
}

// CreateNote resolves or creates the subject and chapter for the upload,
// attaches any supplied images, stores the note file and creates the note
// row. The steps are deliberately not wrapped in one transaction: a failure
// after subject/chapter creation leaves them behind, and a retry of the same
// upload reuses them through get-or-create instead of duplicating.
func (s *noteServiceImpl) CreateNote(ctx context.Context, upload *NoteUpload, isQuantum bool, userID int64) (*dto.NoteResponse, error) {
	if upload.File == nil {
		return nil, apperrors.ErrFileRequired
	}
	req := upload.Request

	subject, err := s.subjectRepo.GetOrCreate(ctx, req.Subject, req.Year, isQuantum)
	if err != nil {
		return nil, fmt.Errorf("error resolving subject: %w", err)
	}

	// Attach/replace subject image if provided
	if upload.SubjectImage != nil {
		imagePath, err := s.storage.SaveFileWithPath(upload.SubjectImage, "subjects")
		if err != nil {
			return nil, fmt.Errorf("error saving subject image: %w", err)
		}
		if err := s.subjectRepo.UpdateImage(ctx, subject.ID, imagePath); err != nil {
			return nil, fmt.Errorf("error attaching subject image: %w", err)
		}
	}

	chapter, err := s.chapterRepo.GetOrCreate(ctx, subject.ID, req.Chapter)
	if err != nil {
		return nil, fmt.Errorf("error resolving chapter: %w", err)
	}

	if upload.ChapterImage != nil {
		imagePath, err := s.storage.SaveFileWithPath(upload.ChapterImage, "chapters")
		if err != nil {
			return nil, fmt.Errorf("error saving chapter image: %w", err)
		}
		if err := s.chapterRepo.UpdateImage(ctx, chapter.ID, imagePath); err != nil {
			return nil, fmt.Errorf("error attaching chapter image: %w", err)
		}
	}

	filePath, err := s.storage.SaveFileWithPath(upload.File, "notes")
	if err != nil {
		return nil, fmt.Errorf("error saving note file: %w", err)
	}

	noteID, err := s.noteRepo.Create(ctx, &models.Note{
		ChapterID:  chapter.ID,
		Title:      req.Title,
		FilePath:   filePath,
		UploadedBy: userID,
	})
	if err != nil {
		// The stored file has no owning row; remove it so storage does not
		// accumulate unreferenced blobs.
		if delErr := s.storage.DeleteFile(filePath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", filePath).Msg("Failed to remove file after note creation failure")
		}
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	details, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("error loading created note: %w", err)
	}

	logger.Info().Int64("noteID", noteID).Str("subject", subject.Name).Bool("isQuantum", isQuantum).Msg("Note uploaded")

	resp := noteResponseFromDetails(details, s.storage)
	return &resp, nil
}

// DeleteNote deletes the stored file and then the note row. When not found
// it fails with the note-not-found error rather than silently succeeding.
// The response reports the note's year and quantum flag so the client can
// return to the listing it was deleted from.
func (s *noteServiceImpl) DeleteNote(ctx context.Context, id int64) (*dto.DeleteNoteResponse, error) {
	details, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.storage.DeleteFile(details.FilePath); err != nil {
		// The row survives, so the delete can be retried; nothing dangles.
		return nil, fmt.Errorf("error deleting note file: %w", err)
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("error deleting note: %w", err)
	}

	logger.Info().Int64("noteID", id).Msg("Note deleted")

	return &dto.DeleteNoteResponse{
		Message:   "Note deleted successfully",
		Year:      details.Year,
		IsQuantum: details.IsQuantum,
	}, nil
}
