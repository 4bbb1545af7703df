package dto

// SubjectResponse represents a subject row for listings.
type SubjectResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	IsQuantum bool   `json:"isQuantum"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// SubjectNotesResponse pairs a subject with its notes, newest first.
type SubjectNotesResponse struct {
	Subject SubjectResponse `json:"subject"`
	Notes   []NoteResponse  `json:"notes"`
}

// YearListingResponse is the per-year browse view: every non-quantum subject
// of the year with its notes.
type YearListingResponse struct {
	Year      int                    `json:"year"`
	YearLabel string                 `json:"yearLabel" example:"2nd Year"`
	Subjects  []SubjectNotesResponse `json:"subjects"`
}

// QuantumYearGroup pools the notes of every quantum subject in one year.
type QuantumYearGroup struct {
	Year  int            `json:"year"`
	Notes []NoteResponse `json:"notes"`
}

// QuantumListingResponse groups quantum notes by year, ascending.
type QuantumListingResponse struct {
	Years []QuantumYearGroup `json:"years"`
}

// HomeResponse carries the most recently uploaded notes system-wide.
type HomeResponse struct {
	RecentNotes []NoteResponse `json:"recentNotes"`
}
