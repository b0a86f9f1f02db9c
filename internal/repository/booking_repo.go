package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"futsalcourt/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingModel is the bookings row. team_members is a JSON-encoded text
// column; (booking_date, time_slot) carries the composite unique index that
// makes double booking a storage-level constraint violation.
type BookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	StudentID   int64     `gorm:"column:student_id;index"`
	TeamMembers string    `gorm:"column:team_members;type:text"`
	IDCardURL   string    `gorm:"column:id_card_url"`
	Faculty     string    `gorm:"column:faculty;size:32"`
	Semester    int       `gorm:"column:semester"`
	BookingDate string    `gorm:"column:booking_date;size:10;uniqueIndex:idx_slot_no_double_booking"`
	TimeSlot    string    `gorm:"column:time_slot;size:16;uniqueIndex:idx_slot_no_double_booking"`
	Email       string    `gorm:"column:email;size:254"`
	Approved    bool      `gorm:"column:approved"`
	NoShowCount int       `gorm:"column:no_show_count"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (BookingModel) TableName() string { return "bookings" }

func toDomainBooking(m BookingModel) *domain.Booking {
	var members []string
	if m.TeamMembers != "" {
		_ = json.Unmarshal([]byte(m.TeamMembers), &members)
	}

	return &domain.Booking{
		ID:          m.ID,
		StudentID:   m.StudentID,
		TeamMembers: members,
		IDCardURL:   m.IDCardURL,
		Faculty:     m.Faculty,
		Semester:    m.Semester,
		BookingDate: m.BookingDate,
		TimeSlot:    m.TimeSlot,
		Email:       m.Email,
		Approved:    m.Approved,
		NoShowCount: m.NoShowCount,
		CreatedAt:   m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) BookingModel {
	members, _ := json.Marshal(b.TeamMembers)

	return BookingModel{
		ID:          b.ID,
		StudentID:   b.StudentID,
		TeamMembers: string(members),
		IDCardURL:   b.IDCardURL,
		Faculty:     b.Faculty,
		Semester:    b.Semester,
		BookingDate: b.BookingDate,
		TimeSlot:    b.TimeSlot,
		Email:       b.Email,
		Approved:    b.Approved,
		NoShowCount: b.NoShowCount,
		CreatedAt:   b.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m BookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// IsSlotTaken is the fast user-facing pre-check. The unique index remains
// the authoritative guard under concurrent submissions.
func (r *BookingRepository) IsSlotTaken(ctx context.Context, date, timeSlot string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("booking_date = ? AND time_slot = ?", date, timeSlot).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BookingRepository) ListByStudent(ctx context.Context, studentID int64) ([]domain.Booking, error) {
	var rows []BookingModel
	tx := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("booking_date DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListPending(ctx context.Context) ([]domain.Booking, error) {
	var rows []BookingModel
	tx := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("booking_date, time_slot").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) SetApproved(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ?", id).
		Update("approved", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
