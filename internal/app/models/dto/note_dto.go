package dto

import "time"

// CreateNoteRequest carries the text fields of the multipart upload form.
// The note file and the optional subject/chapter images are read from the
// multipart body by the controller.
type CreateNoteRequest struct {
	Title   string `form:"title" binding:"required"`
	Subject string `form:"subject" binding:"required"`
	Year    int    `form:"year" binding:"required,min=1"`
	Chapter string `form:"chapter" binding:"required"`
}

// NoteResponse represents one note with its derived chapter/subject context.
type NoteResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	FileURL     string    `json:"fileUrl"`
	ChapterID   int64     `json:"chapterId"`
	ChapterName string    `json:"chapterName"`
	SubjectID   int64     `json:"subjectId"`
	SubjectName string    `json:"subjectName"`
	Year        int       `json:"year"`
	IsQuantum   bool      `json:"isQuantum"`
	UploadedBy  int64     `json:"uploadedBy"`
	Uploader    string    `json:"uploader"`
	UploadDate  time.Time `json:"uploadDate"`
}

// DeleteNoteResponse reports where the deleted note lived so clients can
// return to the listing it belonged to.
type DeleteNoteResponse struct {
	Message   string `json:"message"`
	Year      int    `json:"year"`
	IsQuantum bool   `json:"isQuantum"`
}
