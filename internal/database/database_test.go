package database

import (
	"testing"

	"github.com/gdg-garage/tour-booking-api/internal/models"
)

func TestOpen_MigratesSchema(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	for _, model := range []any{&models.User{}, &models.Tour{}, &models.Reservation{}} {
		if !db.Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}

	user := models.User{Email: "a@example.com", Name: "A"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated user ID")
	}

	dup := models.User{Email: "a@example.com", Name: "B"}
	if err := db.Create(&dup).Error; err == nil {
		t.Error("expected unique email constraint to reject duplicate")
	}
}

func TestOpen_ReservationDefaults(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	user := models.User{Email: "b@example.com", Name: "B"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	tour := models.Tour{Title: "T", Description: "D", Price: 10, Location: "L", Duration: 1, MaxCapacity: 1, CreatorID: user.ID}
	if err := db.Create(&tour).Error; err != nil {
		t.Fatalf("failed to create tour: %v", err)
	}

	reservation := models.Reservation{TourID: tour.ID, UserID: user.ID, Guests: 1}
	if err := db.Create(&reservation).Error; err != nil {
		t.Fatalf("failed to create reservation: %v", err)
	}
	if reservation.Status != models.StatusPending {
		t.Errorf("expected default status PENDING, got %s", reservation.Status)
	}
}
