package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tour struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Location    string    `json:"location" gorm:"not null"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Duration    int       `json:"duration" gorm:"not null"` // days
	MaxCapacity int       `json:"maxCapacity" gorm:"not null"`
	CreatorID   string    `json:"creatorId" gorm:"index;not null"`
	Creator     *User     `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
