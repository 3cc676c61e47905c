package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdg-garage/tour-booking-api/internal/models"
	"gorm.io/gorm"
)

type CreateTourInput struct {
	Title       string
	Description string
	Price       float64
	Location    string
	ImageURL    *string
	Duration    int
	MaxCapacity int
}

// UpdateTourInput holds a partial update; nil fields are left unchanged.
type UpdateTourInput struct {
	Title       *string
	Description *string
	Price       *float64
	Location    *string
	ImageURL    *string
	Duration    *int
	MaxCapacity *int
}

func (in UpdateTourInput) changes() map[string]any {
	changes := map[string]any{}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Price != nil {
		changes["price"] = *in.Price
	}
	if in.Location != nil {
		changes["location"] = *in.Location
	}
	if in.ImageURL != nil {
		changes["image_url"] = *in.ImageURL
	}
	if in.Duration != nil {
		changes["duration"] = *in.Duration
	}
	if in.MaxCapacity != nil {
		changes["max_capacity"] = *in.MaxCapacity
	}
	return changes
}

type TourService struct {
	db *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{db: db}
}

func (s *TourService) ListTours(ctx context.Context) ([]models.Tour, error) {
	tours := []models.Tour{}
	if err := s.db.WithContext(ctx).Preload("Creator").Order("created_at desc").Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return tours, nil
}

func (s *TourService) ListToursByCreator(ctx context.Context, creatorID string) ([]models.Tour, error) {
	tours := []models.Tour{}
	err := s.db.WithContext(ctx).Preload("Creator").
		Where("creator_id = ?", creatorID).
		Order("created_at desc").
		Find(&tours).Error
	if err != nil {
		return nil, fmt.Errorf("list tours by creator: %w", err)
	}
	return tours, nil
}

func (s *TourService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	return s.find(s.db.WithContext(ctx).Preload("Creator"), id)
}

func (s *TourService) CreateTour(ctx context.Context, input CreateTourInput, creatorID string) (*models.Tour, error) {
	db := s.db.WithContext(ctx)

	tour := models.Tour{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Duration:    input.Duration,
		MaxCapacity: input.MaxCapacity,
		CreatorID:   creatorID,
	}
	if err := db.Create(&tour).Error; err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	return s.find(db.Preload("Creator"), tour.ID)
}

func (s *TourService) UpdateTour(ctx context.Context, id string, input UpdateTourInput, userID string) (*models.Tour, error) {
	db := s.db.WithContext(ctx)

	existing, err := s.find(db, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatorID != userID {
		return nil, newError(KindUnauthorized, "Unauthorized: You can only update your own tours")
	}

	if changes := input.changes(); len(changes) > 0 {
		if err := db.Model(existing).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("update tour: %w", err)
		}
	}

	return s.find(db.Preload("Creator"), id)
}

// DeleteTour removes the tour together with its reservations.
func (s *TourService) DeleteTour(ctx context.Context, id string, userID string) error {
	db := s.db.WithContext(ctx)

	existing, err := s.find(db, id)
	if err != nil {
		return err
	}
	if existing.CreatorID != userID {
		return newError(KindUnauthorized, "Unauthorized: You can only delete your own tours")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return fmt.Errorf("delete reservations: %w", err)
		}
		if err := tx.Delete(&models.Tour{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete tour: %w", err)
		}
		return nil
	})
}

func (s *TourService) find(db *gorm.DB, id string) (*models.Tour, error) {
	var tour models.Tour
	err := db.First(&tour, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newError(KindNotFound, "Tour not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find tour: %w", err)
	}
	return &tour, nil
}
