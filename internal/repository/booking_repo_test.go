package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"futsalcourt/internal/database"
	"futsalcourt/internal/domain"
	"futsalcourt/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newBooking(studentID int64, date, slot string) *domain.Booking {
	return &domain.Booking{
		StudentID:   studentID,
		TeamMembers: []string{"2021CS001", "2021CS014"},
		IDCardURL:   "/static/uploads/id-cards/1-1.png",
		Faculty:     "Computer",
		Semester:    3,
		BookingDate: date,
		TimeSlot:    slot,
		Email:       "cs001@student.example.edu",
	}
}

func TestBookingRepository_CreateAndRead(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(1, "2027-01-10", "09:00 - 10:00")
	require.NoError(t, repo.Create(ctx, b))
	assert.NotZero(t, b.ID)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2021CS001", "2021CS014"}, got.TeamMembers)
	assert.Equal(t, "2027-01-10", got.BookingDate)
	assert.Equal(t, "09:00 - 10:00", got.TimeSlot)
	assert.False(t, got.Approved)
}

func TestBookingRepository_IsSlotTaken(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()

	taken, err := repo.IsSlotTaken(ctx, "2027-01-10", "09:00 - 10:00")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, repo.Create(ctx, newBooking(1, "2027-01-10", "09:00 - 10:00")))

	taken, err = repo.IsSlotTaken(ctx, "2027-01-10", "09:00 - 10:00")
	require.NoError(t, err)
	assert.True(t, taken)

	// Same date, different slot stays free.
	taken, err = repo.IsSlotTaken(ctx, "2027-01-10", "10:00 - 11:00")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestBookingRepository_UniqueIndexBlocksDoubleBooking(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking(1, "2027-01-10", "09:00 - 10:00")))

	// A second insert for the same slot must fail at the storage layer even
	// though no pre-check ran.
	err := repo.Create(ctx, newBooking(2, "2027-01-10", "09:00 - 10:00"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}

func TestBookingRepository_ListByStudent(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking(1, "2027-01-10", "09:00 - 10:00")))
	require.NoError(t, repo.Create(ctx, newBooking(1, "2027-02-01", "17:00 - 18:00")))
	require.NoError(t, repo.Create(ctx, newBooking(2, "2027-01-11", "09:00 - 10:00")))

	rows, err := repo.ListByStudent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Newest booking date first.
	assert.Equal(t, "2027-02-01", rows[0].BookingDate)
	assert.Equal(t, "2027-01-10", rows[1].BookingDate)
}

func TestBookingRepository_SetApproved(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewBookingRepository(db)
	ctx := context.Background()

	b := newBooking(1, "2027-01-10", "09:00 - 10:00")
	require.NoError(t, repo.Create(ctx, b))

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, repo.SetApproved(ctx, b.ID))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)

	pending, err = repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.ErrorIs(t, repo.SetApproved(ctx, 9999), gorm.ErrRecordNotFound)
}

func TestStudentRepository_GetByRollNo(t *testing.T) {
	db := setupDB(t)
	repo := repository.NewStudentRepository(db)
	ctx := context.Background()

	s, err := repo.GetByRollNo(ctx, "2021CS001")
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.Create(ctx, &domain.Student{RollNo: "2021CS001"}))

	s, err = repo.GetByRollNo(ctx, "2021CS001")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "2021CS001", s.RollNo)
}
