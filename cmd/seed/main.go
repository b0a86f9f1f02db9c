package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"futsalcourt/internal/database"
	"futsalcourt/internal/domain"
	"futsalcourt/internal/repository"
)

func main() {
	_ = godotenv.Load()

	db, err := database.Connect("futsal.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM students")

	log.Println("Creating students...")
	students := []domain.Student{
		{RollNo: "2021CS001", Approved: true},
		{RollNo: "2021CS014", Approved: true},
		{RollNo: "2022IT007"},
	}
	for i := range students {
		db.Create(&students[i])
	}

	log.Println("Creating bookings...")
	repo := repository.NewBookingRepository(db)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	bookings := []domain.Booking{
		{
			StudentID:   students[0].ID,
			TeamMembers: []string{"2021CS001", "2021CS014", "2021CS022"},
			IDCardURL:   "/static/uploads/id-cards/seed-1.png",
			Faculty:     "Computer",
			Semester:    5,
			BookingDate: tomorrow,
			TimeSlot:    "09:00 - 10:00",
			Email:       "cs001@student.example.edu",
			Approved:    true,
		},
		{
			StudentID:   students[1].ID,
			TeamMembers: []string{"2021CS014", "2021CS031"},
			IDCardURL:   "/static/uploads/id-cards/seed-2.png",
			Faculty:     "IT",
			Semester:    3,
			BookingDate: nextWeek,
			TimeSlot:    "17:00 - 18:00",
			Email:       "cs014@student.example.edu",
		},
	}
	for i := range bookings {
		if err := repo.Create(context.Background(), &bookings[i]); err != nil {
			log.Fatal("seed booking failed:", err)
		}
	}

	// Handy for ADMIN_PASSWORD_HASH in a local .env.
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	log.Println("Sample admin password hash (admin123):", string(hash))

	log.Println("Seed complete.")
}
