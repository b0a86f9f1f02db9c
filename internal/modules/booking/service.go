package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"futsalcourt/internal/domain"
	"futsalcourt/internal/storage"
)

type Service struct {
	bookings BookingRepository
	students StudentRepository
	idCards  IDCardStorage
}

func NewService(bookings BookingRepository, students StudentRepository, idCards IDCardStorage) *Service {
	return &Service{
		bookings: bookings,
		students: students,
		idCards:  idCards,
	}
}

// Submit validates the draft, uploads the ID card, checks the slot and
// inserts the booking with approved=false. Validation runs before any
// storage call and stops at the first failure, in form order.
func (s *Service) Submit(ctx context.Context, draft Draft) (*domain.Booking, error) {
	members := trimmedMembers(draft.TeamMembers)
	if err := validateDraft(draft, members); err != nil {
		return nil, err
	}

	student, err := s.students.GetByRollNo(ctx, draft.RollNo)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	idCardURL, err := s.idCards.Save(student.ID, draft.IDCard)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return nil, ErrIDCardTooLarge
		case errors.Is(err, storage.ErrEmptyFile):
			return nil, ErrIDCardMissing
		case errors.Is(err, storage.ErrInvalidMimeType):
			return nil, ErrIDCardType
		}
		return nil, err
	}

	// Fast pre-check. The unique index on (booking_date, time_slot) remains
	// the authoritative guard if two submissions race past this read.
	taken, err := s.bookings.IsSlotTaken(ctx, draft.BookingDate, draft.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	b := &domain.Booking{
		StudentID:   student.ID,
		TeamMembers: members,
		IDCardURL:   idCardURL,
		Faculty:     draft.Faculty,
		Semester:    draft.Semester,
		BookingDate: draft.BookingDate,
		TimeSlot:    draft.TimeSlot,
		Email:       draft.Email,
		Approved:    false,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return b, nil
}

// PreviousBookings returns the student's past bookings, newest date first.
// Disabled accounts keep their rows but see an empty history.
func (s *Service) PreviousBookings(ctx context.Context, rollNo string) ([]domain.Booking, error) {
	student, err := s.students.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	if !student.Approved {
		return []domain.Booking{}, nil
	}
	return s.bookings.ListByStudent(ctx, student.ID)
}

func trimmedMembers(members []string) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		if v := strings.TrimSpace(m); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func validateDraft(draft Draft, members []string) error {
	if len(members) < 2 {
		return ErrTeamTooSmall
	}
	if draft.IDCard == nil {
		return ErrIDCardMissing
	}
	if draft.IDCard.Size > storage.MaxIDCardSize {
		return ErrIDCardTooLarge
	}
	if !domain.IsValidFaculty(draft.Faculty) {
		return ErrInvalidFaculty
	}
	if !domain.IsValidSemester(draft.Semester) {
		return ErrInvalidSemester
	}
	if draft.BookingDate == "" {
		return ErrDateRequired
	}
	day, err := time.ParseInLocation("2006-01-02", draft.BookingDate, time.Local)
	if err != nil {
		return ErrDateRequired
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return ErrPastDate
	}
	if !domain.IsValidTimeSlot(draft.TimeSlot) {
		return ErrInvalidTimeSlot
	}
	return nil
}

// isUniqueViolation recognizes the double-booking constraint from either
// backing store: pgconn 23505 on PostgreSQL, the UNIQUE failure message on
// SQLite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
