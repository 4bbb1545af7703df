package services

import (
	"github.com/ozgur/notesphere/internal/app/models"
	"github.com/ozgur/notesphere/internal/app/models/dto"
	"github.com/ozgur/notesphere/internal/app/repositories"
	"github.com/ozgur/notesphere/internal/pkg/filestorage"
)

func noteResponseFromDetails(d *repositories.NoteDetails, storage filestorage.Storage) dto.NoteResponse {
	return dto.NoteResponse{
		ID:          d.ID,
		Title:       d.Title,
		FileURL:     storage.FileURL(d.FilePath),
		ChapterID:   d.ChapterID,
		ChapterName: d.ChapterName,
		SubjectID:   d.SubjectID,
		SubjectName: d.SubjectName,
		Year:        d.Year,
		IsQuantum:   d.IsQuantum,
		UploadedBy:  d.UploadedBy,
		Uploader:    d.UploaderFirstName + " " + d.UploaderLastName,
		UploadDate:  d.UploadDate,
	}
}

func noteResponsesFromDetails(details []*repositories.NoteDetails, storage filestorage.Storage) []dto.NoteResponse {
	notes := make([]dto.NoteResponse, 0, len(details))
	for _, d := range details {
		notes = append(notes, noteResponseFromDetails(d, storage))
	}
	return notes
}

func subjectResponseFromModel(s *models.Subject, storage filestorage.Storage) dto.SubjectResponse {
	resp := dto.SubjectResponse{
		ID:        s.ID,
		Name:      s.Name,
		Year:      s.Year,
		IsQuantum: s.IsQuantum,
	}
	if s.ImagePath != nil {
		resp.ImageURL = storage.FileURL(*s.ImagePath)
	}
	return resp
}
