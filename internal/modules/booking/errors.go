package booking

import "errors"

// Validation errors are detectable before any storage call; the user has to
// correct the form. ErrSlotTaken means the user must pick another slot.
var (
	ErrTeamTooSmall    = errors.New("add at least 2 team members")
	ErrIDCardMissing   = errors.New("upload your college ID card")
	ErrIDCardTooLarge  = errors.New("file size should be less than 5MB")
	ErrIDCardType      = errors.New("ID card must be an image")
	ErrInvalidFaculty  = errors.New("select your faculty")
	ErrInvalidSemester = errors.New("select your semester")
	ErrDateRequired    = errors.New("select a booking date")
	ErrPastDate        = errors.New("cannot book past dates")
	ErrInvalidTimeSlot = errors.New("select a time slot")

	ErrSlotTaken       = errors.New("this time slot is already booked")
	ErrStudentNotFound = errors.New("student record not found")
)
