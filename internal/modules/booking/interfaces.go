package booking

import (
	"context"
	"mime/multipart"

	"futsalcourt/internal/domain"
)

type BookingRepository interface {
	IsSlotTaken(ctx context.Context, date, timeSlot string) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	ListByStudent(ctx context.Context, studentID int64) ([]domain.Booking, error)
}

type StudentRepository interface {
	GetByRollNo(ctx context.Context, rollNo string) (*domain.Student, error)
}

type IDCardStorage interface {
	Save(studentID int64, fileHeader *multipart.FileHeader) (string, error)
}
