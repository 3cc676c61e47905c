package notifier

import "github.com/gdg-garage/tour-booking-api/internal/models"

type Event string

const (
	EventReservationCreated       Event = "reservation_created"
	EventReservationCancelled     Event = "reservation_cancelled"
	EventReservationStatusChanged Event = "reservation_status_changed"
)

type Notifier interface {
	NotifyReservation(event Event, reservation models.Reservation) error
}

// Noop discards every notification.
type Noop struct{}

func (Noop) NotifyReservation(Event, models.Reservation) error { return nil }
