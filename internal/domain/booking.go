package domain

import "time"

// Booking holds one court reservation. At most one booking may exist for a
// given (BookingDate, TimeSlot) pair; the bookings table carries a composite
// unique index so the storage layer is the authoritative guard, while the
// application-level slot check stays as a fast pre-check only.
type Booking struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	TeamMembers []string  `json:"team_members"`
	IDCardURL   string    `json:"id_card_url"`
	Faculty     string    `json:"faculty"`
	Semester    int       `json:"semester"`
	BookingDate string    `json:"booking_date"` // "2006-01-02"
	TimeSlot    string    `json:"time_slot"`
	Email       string    `json:"email"`
	Approved    bool      `json:"approved"`
	NoShowCount int       `json:"no_show_count"`
	CreatedAt   time.Time `json:"created_at"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}
