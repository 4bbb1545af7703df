package models

import "time"

// Chapter is a named subdivision of a Subject grouping notes.
// Name is unique within its subject.
type Chapter struct {
	ID        int64     `db:"id" json:"id"`
	SubjectID int64     `db:"subject_id" json:"subjectId"`
	Name      string    `db:"name" json:"name"`
	ImagePath *string   `db:"image_path" json:"imagePath,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
