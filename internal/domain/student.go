package domain

import "time"

// Student is created on first login with a roll number. The roll number is
// the login credential; it is stored upper-cased and never mutated.
// Approved defaults to true; clearing it disables the account's booking
// history without deleting the row.
type Student struct {
	ID        int64     `json:"id"`
	RollNo    string    `json:"roll_no" gorm:"uniqueIndex;size:32"`
	Approved  bool      `json:"approved" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}
