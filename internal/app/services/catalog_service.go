package services

import (
	"context"
	"fmt"

	"github.com/ozgur/notesphere/internal/app/models/dto"
	"github.com/ozgur/notesphere/internal/app/repositories"
	"github.com/ozgur/notesphere/internal/pkg/filestorage"
	"github.com/ozgur/notesphere/internal/pkg/helpers"
)

// RecentNotesLimit is how many notes the home listing shows.
const RecentNotesLimit = 5

// CatalogService defines the read side: browsing subjects and notes.
type CatalogService interface {
	Home(ctx context.Context) (*dto.HomeResponse, error)
	YearListing(ctx context.Context, year int) (*dto.YearListingResponse, error)
	QuantumListing(ctx context.Context) (*dto.QuantumListingResponse, error)
	SubjectNotes(ctx context.Context, subjectID int64) (*dto.SubjectNotesResponse, error)
}

// catalogServiceImpl implements CatalogService
type catalogServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
	noteRepo    *repositories.NoteRepository
	storage     filestorage.Storage
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	subjectRepo *repositories.SubjectRepository,
	noteRepo *repositories.NoteRepository,
	storage filestorage.Storage,
) CatalogService {
	return &catalogServiceImpl{
		subjectRepo: subjectRepo,
		noteRepo:    noteRepo,
		storage:     storage,
	}
}

// Home returns the most recently uploaded notes system-wide.
func (s *catalogServiceImpl) Home(ctx context.Context) (*dto.HomeResponse, error) {
	notes, err := s.noteRepo.GetRecent(ctx, RecentNotesLimit)
	if err != nil {
		return nil, fmt.Errorf("error getting recent notes: %w", err)
	}

	return &dto.HomeResponse{
		RecentNotes: noteResponsesFromDetails(notes, s.storage),
	}, nil
}

// YearListing returns the non-quantum subjects of one year, each paired with
// its notes newest first.
func (s *catalogServiceImpl) YearListing(ctx context.Context, year int) (*dto.YearListingResponse, error) {
	subjects, err := s.subjectRepo.GetByYear(ctx, year, false)
	if err != nil {
		return nil, fmt.Errorf("error getting subjects for year %d: %w", year, err)
	}

	listing := &dto.YearListingResponse{
		Year:      year,
		YearLabel: helpers.YearLabel(year),
		Subjects:  make([]dto.SubjectNotesResponse, 0, len(subjects)),
	}

	for _, subject := range subjects {
		notes, err := s.noteRepo.GetBySubjectID(ctx, subject.ID)
		if err != nil {
			return nil, fmt.Errorf("error getting notes for subject %d: %w", subject.ID, err)
		}
		listing.Subjects = append(listing.Subjects, dto.SubjectNotesResponse{
			Subject: subjectResponseFromModel(subject, s.storage),
			Notes:   noteResponsesFromDetails(notes, s.storage),
		})
	}

	return listing, nil
}

// QuantumListing groups quantum notes by year ascending, pooling the notes of
// every quantum subject within a year. There is no per-subject level here.
func (s *catalogServiceImpl) QuantumListing(ctx context.Context) (*dto.QuantumListingResponse, error) {
	years, err := s.subjectRepo.GetQuantumYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting quantum years: %w", err)
	}

	listing := &dto.QuantumListingResponse{
		Years: make([]dto.QuantumYearGroup, 0, len(years)),
	}

	for _, year := range years {
		notes, err := s.noteRepo.GetQuantumByYear(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("error getting quantum notes for year %d: %w", year, err)
		}
		listing.Years = append(listing.Years, dto.QuantumYearGroup{
			Year:  year,
			Notes: noteResponsesFromDetails(notes, s.storage),
		})
	}

	return listing, nil
}

// SubjectNotes returns one subject and its notes, newest first.
func (s *catalogServiceImpl) SubjectNotes(ctx context.Context, subjectID int64) (*dto.SubjectNotesResponse, error) {
	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.GetBySubjectID(ctx, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("error getting notes for subject %d: %w", subject.ID, err)
	}

	return &dto.SubjectNotesResponse{
		Subject: subjectResponseFromModel(subject, s.storage),
		Notes:   noteResponsesFromDetails(notes, s.storage),
	}, nil
}
