package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-booking-api/internal/models"
	"github.com/gdg-garage/tour-booking-api/internal/service"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, input service.CreateReservationInput, userID string) (*models.Reservation, error)
	ListUserReservations(ctx context.Context, userID string) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id, userID string) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id, userID string) (*models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status models.ReservationStatus) (*models.Reservation, error)
}

type ReservationHandler struct {
	reservations ReservationService
}

func NewReservationHandler(reservations ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type CreateReservationRequest struct {
	Body struct {
		TourID string `json:"tourId,omitempty"`
		Date   string `json:"date,omitempty" doc:"ISO 8601 date or date-time; values without an offset are UTC"`
		Guests int    `json:"guests,omitempty"`
	}
}

type ReservationIDRequest struct {
	ID string `path:"id" doc:"Reservation ID"`
}

type UpdateStatusRequest struct {
	ID   string `path:"id" doc:"Reservation ID"`
	Body struct {
		Status models.ReservationStatus `json:"status,omitempty" doc:"CONFIRMED, CANCELLED or COMPLETED"`
	}
}

type ReservationResponse struct {
	Body struct {
		Message     string             `json:"message,omitempty"`
		Reservation models.Reservation `json:"reservation"`
	}
}

func newReservationResponse(message string, reservation *models.Reservation) *ReservationResponse {
	res := &ReservationResponse{}
	res.Body.Message = message
	res.Body.Reservation = *reservation
	return res
}

type ReservationListResponse struct {
	Body struct {
		Reservations []models.Reservation `json:"reservations"`
		Count        int                  `json:"count"`
	}
}

func (h *ReservationHandler) HandleCreate(ctx context.Context, input *CreateReservationRequest) (*ReservationResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	body := input.Body
	if body.TourID == "" || body.Date == "" || body.Guests == 0 {
		return nil, huma.Error400BadRequest("Tour ID, date, and number of guests are required")
	}
	if body.Guests < 0 {
		return nil, huma.Error400BadRequest("Number of guests must be greater than 0")
	}

	reservation, err := h.reservations.CreateReservation(ctx, service.CreateReservationInput{
		TourID: body.TourID,
		Date:   body.Date,
		Guests: body.Guests,
	}, userID)
	if err != nil {
		return nil, serviceError(err)
	}

	return newReservationResponse("Reservation created successfully", reservation), nil
}

func (h *ReservationHandler) HandleList(ctx context.Context, _ *struct{}) (*ReservationListResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	reservations, err := h.reservations.ListUserReservations(ctx, userID)
	if err != nil {
		return nil, serviceError(err)
	}

	res := &ReservationListResponse{}
	res.Body.Reservations = reservations
	res.Body.Count = len(reservations)
	return res, nil
}

func (h *ReservationHandler) HandleGet(ctx context.Context, input *ReservationIDRequest) (*ReservationResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	reservation, err := h.reservations.GetReservation(ctx, input.ID, userID)
	if err != nil {
		return nil, serviceError(err)
	}
	return newReservationResponse("", reservation), nil
}

func (h *ReservationHandler) HandleCancel(ctx context.Context, input *ReservationIDRequest) (*ReservationResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	reservation, err := h.reservations.CancelReservation(ctx, input.ID, userID)
	if err != nil {
		return nil, serviceError(err)
	}
	return newReservationResponse("Reservation cancelled successfully", reservation), nil
}

// HandleUpdateStatus lets any authenticated user set a reservation's
// status; no ownership or role is enforced.
func (h *ReservationHandler) HandleUpdateStatus(ctx context.Context, input *UpdateStatusRequest) (*ReservationResponse, error) {
	if _, err := currentUserID(ctx); err != nil {
		return nil, err
	}

	if !input.Body.Status.Assignable() {
		return nil, huma.Error400BadRequest("Valid status is required (CONFIRMED, CANCELLED, or COMPLETED)")
	}

	reservation, err := h.reservations.UpdateReservationStatus(ctx, input.ID, input.Body.Status)
	if err != nil {
		return nil, serviceError(err)
	}
	return newReservationResponse("Reservation status updated successfully", reservation), nil
}
