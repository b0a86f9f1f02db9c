package auth

import (
	"context"

	"futsalcourt/internal/domain"
	"futsalcourt/internal/session"
)

type Service struct {
	students StudentRepository
	sessions SessionStore
}

func NewService(students StudentRepository, sessions SessionStore) *Service {
	return &Service{students: students, sessions: sessions}
}

// Login registers the roll number on first use, then opens a session for it.
// The roll number is upper-cased before anything touches storage.
func (s *Service) Login(ctx context.Context, rollNo string) (*domain.Student, string, error) {
	rollNo = session.NormalizeRollNo(rollNo)
	if rollNo == "" {
		return nil, "", ErrRollNoRequired
	}

	student, err := s.students.GetByRollNo(ctx, rollNo)
	if err != nil {
		return nil, "", err
	}
	if student == nil {
		student = &domain.Student{RollNo: rollNo, Approved: true}
		if err := s.students.Create(ctx, student); err != nil {
			return nil, "", err
		}
	}

	token, err := s.sessions.Login(ctx, rollNo, student.ID)
	if err != nil {
		return nil, "", err
	}

	return student, token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Logout(ctx, token); err != nil {
		return ErrInvalidSession
	}
	return nil
}
