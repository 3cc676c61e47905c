package service

import (
	"sync"
	"testing"
	"time"

	"github.com/gdg-garage/tour-booking-api/internal/database"
	"github.com/gdg-garage/tour-booking-api/internal/models"
	"github.com/gdg-garage/tour-booking-api/internal/notifier"
	"gorm.io/gorm"
)

var testNow = time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Name: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTour(t *testing.T, db *gorm.DB, creatorID string, price float64, capacity int) models.Tour {
	t.Helper()
	tour := models.Tour{
		Title:       "Castle Tour",
		Description: "A walk through the castle",
		Price:       price,
		Location:    "Prague",
		Duration:    1,
		MaxCapacity: capacity,
		CreatorID:   creatorID,
	}
	if err := db.Create(&tour).Error; err != nil {
		t.Fatalf("failed to create tour: %v", err)
	}
	return tour
}

type sentNotification struct {
	event       notifier.Event
	reservation models.Reservation
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) NotifyReservation(event notifier.Event, reservation models.Reservation) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{event: event, reservation: reservation})
	return nil
}

func (n *recordingNotifier) events() []notifier.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	events := make([]notifier.Event, 0, len(n.sent))
	for _, s := range n.sent {
		events = append(events, s.event)
	}
	return events
}

func expectKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("expected %v error, got %v (%v)", kind, got, err)
	}
}
