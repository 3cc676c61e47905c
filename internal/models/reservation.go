package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
)

// Cancellable reports whether the owner may still cancel a reservation in
// this status.
func (s ReservationStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Assignable reports whether s may be set through a status update.
// PENDING is only ever the initial status.
func (s ReservationStatus) Assignable() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type Reservation struct {
	ID         string            `json:"id" gorm:"primaryKey"`
	TourID     string            `json:"tourId" gorm:"index;not null"`
	Tour       *Tour             `json:"tour,omitempty" gorm:"foreignKey:TourID"`
	UserID     string            `json:"userId" gorm:"index;not null"`
	User       *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Date       time.Time         `json:"date" gorm:"not null"`
	Guests     int               `json:"guests" gorm:"not null"`
	TotalPrice float64           `json:"totalPrice" gorm:"not null"`
	Status     ReservationStatus `json:"status" gorm:"not null;default:'PENDING'"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}
