package models

import "time"

// Note represents a single uploaded file record. Its academic year and
// quantum status are derived through its chapter's subject; the note row
// stores neither.
type Note struct {
	ID         int64     `db:"id" json:"id"`
	ChapterID  int64     `db:"chapter_id" json:"chapterId"`
	Title      string    `db:"title" json:"title"`
	FilePath   string    `db:"file_path" json:"filePath"`
	UploadedBy int64     `db:"uploaded_by" json:"uploadedBy"`
	UploadDate time.Time `db:"upload_date" json:"uploadDate"`
}
