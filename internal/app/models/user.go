package models

import "time"

// User represents an account. Staff members may upload and delete notes;
// everyone else only browses.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	IsStaff   bool      `db:"is_staff" json:"isStaff"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
