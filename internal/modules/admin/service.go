package admin

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"futsalcourt/internal/domain"
)

type Service struct {
	bookings BookingRepository
	notifs   Notifier
	events   EventPusher
	tokens   TokenIssuer

	adminEmail        string
	adminPasswordHash string
}

func NewService(
	bookings BookingRepository,
	notifs Notifier,
	events EventPusher,
	tokens TokenIssuer,
	adminEmail, adminPasswordHash string,
) *Service {
	return &Service{
		bookings:          bookings,
		notifs:            notifs,
		events:            events,
		tokens:            tokens,
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPasswordHash: adminPasswordHash,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		return "", ErrNotConfigured
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.adminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateAdminToken(email)
}

func (s *Service) PendingBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListPending(ctx)
}

// ApproveResult reports what the approval did. EmailSent is false when the
// dispatcher rejected the mail; the approval itself is never rolled back.
type ApproveResult struct {
	Booking   *domain.Booking `json:"booking"`
	EmailSent bool            `json:"email_sent"`
}

// Approve flips the booking to approved, then triggers the notification
// dispatcher and pushes a realtime event to the student if connected.
func (s *Service) Approve(ctx context.Context, bookingID int64) (*ApproveResult, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.Approved {
		return nil, ErrAlreadyApproved
	}

	if err := s.bookings.SetApproved(ctx, bookingID); err != nil {
		return nil, err
	}
	b.Approved = true

	emailSent := true
	if b.Email != "" {
		if err := s.notifs.NotifyApproved(ctx, b.Email); err != nil {
			log.Printf("approval_mail_failed booking_id=%d to=%s error=%q", b.ID, b.Email, err)
			emailSent = false
		}
	} else {
		emailSent = false
	}

	if s.events != nil {
		_ = s.events.SendToStudent(b.StudentID, map[string]any{
			"type":         "booking.approved",
			"booking_id":   b.ID,
			"booking_date": b.BookingDate,
			"time_slot":    b.TimeSlot,
			"at":           time.Now(),
		})
	}

	return &ApproveResult{Booking: b, EmailSent: emailSent}, nil
}
