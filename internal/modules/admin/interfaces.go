package admin

import (
	"context"

	"futsalcourt/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListPending(ctx context.Context) ([]domain.Booking, error)
	SetApproved(ctx context.Context, id int64) error
}

// Notifier is the approval-email dispatcher.
type Notifier interface {
	NotifyApproved(ctx context.Context, recipientEmail string) error
}

// EventPusher pushes realtime events to a connected student. Best effort.
type EventPusher interface {
	SendToStudent(studentID int64, event any) bool
}

type TokenIssuer interface {
	GenerateAdminToken(email string) (string, error)
}
