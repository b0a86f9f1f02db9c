package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"futsalcourt/internal/domain"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(ctx context.Context, s *domain.Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetByRollNo returns (nil, nil) when no student exists, so the login path
// can distinguish first-time registration from a storage failure.
func (r *StudentRepository) GetByRollNo(ctx context.Context, rollNo string) (*domain.Student, error) {
	var s domain.Student
	tx := r.db.WithContext(ctx).Where("roll_no = ?", rollNo).First(&s)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &s, nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	var s domain.Student
	tx := r.db.WithContext(ctx).First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}
