package models

import "time"

// Subject represents a course/topic at a given academic year. The
// (name, year, is_quantum) triple is the get-or-create key: quantum and
// regular subjects with the same name and year are distinct rows.
type Subject struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Year      int       `db:"year" json:"year"`
	IsQuantum bool      `db:"is_quantum" json:"isQuantum"`
	ImagePath *string   `db:"image_path" json:"imagePath,omitempty"` // pointer to handle NULL
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
