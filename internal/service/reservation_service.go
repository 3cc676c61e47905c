package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdg-garage/tour-booking-api/internal/models"
	"github.com/gdg-garage/tour-booking-api/internal/notifier"
	"gorm.io/gorm"
)

type CreateReservationInput struct {
	TourID string
	Date   string
	Guests int
}

// dateLayouts are the accepted ISO 8601 forms of a reservation date.
// Values without an offset are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses an ISO 8601 reservation date and normalises it to UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, newError(KindValidation, "Invalid date format")
}

type ReservationService struct {
	db       *gorm.DB
	notifier notifier.Notifier
	now      func() time.Time
}

func NewReservationService(db *gorm.DB, n notifier.Notifier) *ReservationService {
	if n == nil {
		n = notifier.Noop{}
	}
	return &ReservationService{db: db, notifier: n, now: time.Now}
}

// CreateReservation books tour for userID. The duplicate check and the
// insert are separate statements, so two concurrent identical requests can
// both succeed.
func (s *ReservationService) CreateReservation(ctx context.Context, input CreateReservationInput, userID string) (*models.Reservation, error) {
	db := s.db.WithContext(ctx)

	date, err := ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	var tour models.Tour
	err = db.First(&tour, "id = ?", input.TourID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNotFound, "Tour not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find tour: %w", err)
	}

	if input.Guests > tour.MaxCapacity {
		return nil, newError(KindInvalidCapacity, "Tour can only accommodate %d guests", tour.MaxCapacity)
	}

	totalPrice := tour.Price * float64(input.Guests)

	if !date.After(s.now()) {
		return nil, newError(KindInvalidDate, "Reservation date must be in the future")
	}

	var existing int64
	err = db.Model(&models.Reservation{}).
		Where("tour_id = ? AND user_id = ? AND date = ?", tour.ID, userID, date).
		Count(&existing).Error
	if err != nil {
		return nil, fmt.Errorf("check existing reservation: %w", err)
	}
	if existing > 0 {
		return nil, newError(KindDuplicateReservation, "You already have a reservation for this tour on this date")
	}

	reservation := models.Reservation{
		TourID:     tour.ID,
		UserID:     userID,
		Date:       date,
		Guests:     input.Guests,
		TotalPrice: totalPrice,
		Status:     models.StatusPending,
	}
	if err := db.Create(&reservation).Error; err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	created, err := s.load(db, "id = ?", reservation.ID)
	if err != nil {
		return nil, err
	}
	s.notify(notifier.EventReservationCreated, *created)
	return created, nil
}

func (s *ReservationService) ListUserReservations(ctx context.Context, userID string) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := withDetails(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}

// GetReservation returns the reservation only if userID owns it.
func (s *ReservationService) GetReservation(ctx context.Context, id, userID string) (*models.Reservation, error) {
	return s.load(s.db.WithContext(ctx), "id = ? AND user_id = ?", id, userID)
}

func (s *ReservationService) CancelReservation(ctx context.Context, id, userID string) (*models.Reservation, error) {
	db := s.db.WithContext(ctx)

	var reservation models.Reservation
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNotFound, "Reservation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}

	if !reservation.Status.Cancellable() {
		return nil, newError(KindInvalidTransition, "Cannot cancel this reservation")
	}

	if err := db.Model(&reservation).Update("status", models.StatusCancelled).Error; err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	updated, err := s.load(db, "id = ?", id)
	if err != nil {
		return nil, err
	}
	s.notify(notifier.EventReservationCancelled, *updated)
	return updated, nil
}

// UpdateReservationStatus sets any assignable status. It performs no
// ownership or role check.
func (s *ReservationService) UpdateReservationStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error) {
	if !status.Assignable() {
		return nil, newError(KindValidation, "Valid status is required (CONFIRMED, CANCELLED, or COMPLETED)")
	}

	db := s.db.WithContext(ctx)

	var reservation models.Reservation
	err := db.First(&reservation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNotFound, "Reservation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}

	if err := db.Model(&reservation).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	updated, err := s.load(db, "id = ?", id)
	if err != nil {
		return nil, err
	}
	s.notify(notifier.EventReservationStatusChanged, *updated)
	return updated, nil
}

func (s *ReservationService) load(db *gorm.DB, query string, args ...any) (*models.Reservation, error) {
	var reservation models.Reservation
	err := withDetails(db).Where(query, args...).First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNotFound, "Reservation not found")
	}
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	return &reservation, nil
}

func (s *ReservationService) notify(event notifier.Event, reservation models.Reservation) {
	if err := s.notifier.NotifyReservation(event, reservation); err != nil {
		log.Printf("Failed to send %s notification for reservation %s: %v", event, reservation.ID, err)
	}
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Tour.Creator").Preload("User")
}
