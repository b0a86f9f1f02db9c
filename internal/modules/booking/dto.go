package booking

import "mime/multipart"

// Draft is one booking submission as it comes off the form, before
// validation.
type Draft struct {
	RollNo      string
	TeamMembers []string
	Email       string
	Faculty     string
	Semester    int
	BookingDate string // "2006-01-02"
	TimeSlot    string
	IDCard      *multipart.FileHeader
}

// Confirmation mirrors the confirmation view's query parameters. Display
// only, not authoritative.
type Confirmation struct {
	Date        string   `json:"date"`
	TimeSlot    string   `json:"time_slot"`
	TeamMembers []string `json:"team_members"`
}
