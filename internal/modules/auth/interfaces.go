package auth

import (
	"context"

	"futsalcourt/internal/domain"
	"futsalcourt/internal/session"
)

type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByRollNo(ctx context.Context, rollNo string) (*domain.Student, error)
}

type SessionStore interface {
	Login(ctx context.Context, rollNo string, studentID int64) (string, error)
	Logout(ctx context.Context, token string) error
	Current(token string) (string, session.State)
}
