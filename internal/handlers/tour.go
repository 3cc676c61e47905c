package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-booking-api/internal/models"
	"github.com/gdg-garage/tour-booking-api/internal/service"
)

type TourService interface {
	ListTours(ctx context.Context) ([]models.Tour, error)
	ListToursByCreator(ctx context.Context, creatorID string) ([]models.Tour, error)
	GetTour(ctx context.Context, id string) (*models.Tour, error)
	CreateTour(ctx context.Context, input service.CreateTourInput, creatorID string) (*models.Tour, error)
	UpdateTour(ctx context.Context, id string, input service.UpdateTourInput, userID string) (*models.Tour, error)
	DeleteTour(ctx context.Context, id string, userID string) error
}

type TourHandler struct {
	tours TourService
}

func NewTourHandler(tours TourService) *TourHandler {
	return &TourHandler{tours: tours}
}

type TourListResponse struct {
	Body struct {
		Tours []models.Tour `json:"tours"`
		Count int           `json:"count"`
	}
}

func newTourListResponse(tours []models.Tour) *TourListResponse {
	res := &TourListResponse{}
	res.Body.Tours = tours
	res.Body.Count = len(tours)
	return res
}

type TourResponse struct {
	Body struct {
		Message string      `json:"message,omitempty"`
		Tour    models.Tour `json:"tour"`
	}
}

func newTourResponse(message string, tour *models.Tour) *TourResponse {
	res := &TourResponse{}
	res.Body.Message = message
	res.Body.Tour = *tour
	return res
}

type TourIDRequest struct {
	ID string `path:"id" doc:"Tour ID"`
}

type CreateTourRequest struct {
	Body struct {
		Title       string  `json:"title,omitempty"`
		Description string  `json:"description,omitempty"`
		Price       float64 `json:"price,omitempty" doc:"Price per guest"`
		Location    string  `json:"location,omitempty"`
		ImageURL    *string `json:"imageUrl,omitempty"`
		Duration    int     `json:"duration,omitempty" doc:"Duration in days"`
		MaxCapacity int     `json:"maxCapacity,omitempty" doc:"Maximum guests per reservation"`
	}
}

type UpdateTourRequest struct {
	ID   string `path:"id" doc:"Tour ID"`
	Body struct {
		Title       *string  `json:"title,omitempty"`
		Description *string  `json:"description,omitempty"`
		Price       *float64 `json:"price,omitempty"`
		Location    *string  `json:"location,omitempty"`
		ImageURL    *string  `json:"imageUrl,omitempty"`
		Duration    *int     `json:"duration,omitempty"`
		MaxCapacity *int     `json:"maxCapacity,omitempty"`
	}
}

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *TourHandler) HandleList(ctx context.Context, _ *struct{}) (*TourListResponse, error) {
	tours, err := h.tours.ListTours(ctx)
	if err != nil {
		return nil, serviceError(err)
	}
	return newTourListResponse(tours), nil
}

func (h *TourHandler) HandleGet(ctx context.Context, input *TourIDRequest) (*TourResponse, error) {
	tour, err := h.tours.GetTour(ctx, input.ID)
	if err != nil {
		return nil, serviceError(err)
	}
	return newTourResponse("", tour), nil
}

func (h *TourHandler) HandleCreate(ctx context.Context, input *CreateTourRequest) (*TourResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	body := input.Body
	if body.Title == "" || body.Description == "" || body.Price == 0 || body.Location == "" || body.Duration == 0 || body.MaxCapacity == 0 {
		return nil, huma.Error400BadRequest("Title, description, price, location, duration, and maxCapacity are required")
	}
	if err := validateTourNumbers(&body.Price, &body.Duration, &body.MaxCapacity); err != nil {
		return nil, err
	}

	tour, err := h.tours.CreateTour(ctx, service.CreateTourInput{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		Location:    body.Location,
		ImageURL:    body.ImageURL,
		Duration:    body.Duration,
		MaxCapacity: body.MaxCapacity,
	}, userID)
	if err != nil {
		return nil, serviceError(err)
	}

	return newTourResponse("Tour created successfully", tour), nil
}

func (h *TourHandler) HandleUpdate(ctx context.Context, input *UpdateTourRequest) (*TourResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	body := input.Body
	if err := validateTourNumbers(body.Price, body.Duration, body.MaxCapacity); err != nil {
		return nil, err
	}

	tour, err := h.tours.UpdateTour(ctx, input.ID, service.UpdateTourInput{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		Location:    body.Location,
		ImageURL:    body.ImageURL,
		Duration:    body.Duration,
		MaxCapacity: body.MaxCapacity,
	}, userID)
	if err != nil {
		return nil, serviceError(err)
	}

	return newTourResponse("Tour updated successfully", tour), nil
}

func (h *TourHandler) HandleDelete(ctx context.Context, input *TourIDRequest) (*MessageResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.tours.DeleteTour(ctx, input.ID, userID); err != nil {
		return nil, serviceError(err)
	}

	res := &MessageResponse{}
	res.Body.Message = "Tour deleted successfully"
	return res, nil
}

func (h *TourHandler) HandleListMine(ctx context.Context, _ *struct{}) (*TourListResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	tours, err := h.tours.ListToursByCreator(ctx, userID)
	if err != nil {
		return nil, serviceError(err)
	}
	return newTourListResponse(tours), nil
}

// validateTourNumbers checks the provided (non-nil) numeric fields.
func validateTourNumbers(price *float64, duration, maxCapacity *int) error {
	if price != nil && *price <= 0 {
		return huma.Error400BadRequest("Price must be greater than 0")
	}
	if duration != nil && *duration <= 0 {
		return huma.Error400BadRequest("Duration must be greater than 0")
	}
	if maxCapacity != nil && *maxCapacity <= 0 {
		return huma.Error400BadRequest("Max capacity must be greater than 0")
	}
	return nil
}
