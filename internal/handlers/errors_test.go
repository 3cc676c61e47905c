package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-booking-api/internal/service"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected huma.StatusError, got %T (%v)", err, err)
	}
	return statusErr.GetStatus()
}

func TestServiceError(t *testing.T) {
	cases := map[service.Kind]int{
		service.KindNotFound:             http.StatusNotFound,
		service.KindUnauthorized:         http.StatusForbidden,
		service.KindInvalidCapacity:      http.StatusBadRequest,
		service.KindInvalidDate:          http.StatusBadRequest,
		service.KindDuplicateReservation: http.StatusConflict,
		service.KindInvalidTransition:    http.StatusBadRequest,
		service.KindInvalidCredentials:   http.StatusUnauthorized,
		service.KindDuplicateUser:        http.StatusConflict,
		service.KindValidation:           http.StatusBadRequest,
	}
	for kind, want := range cases {
		err := serviceError(fmt.Errorf("wrapped: %w", &service.Error{Kind: kind, Message: "msg"}))
		if got := statusOf(t, err); got != want {
			t.Errorf("%v: expected status %d, got %d", kind, want, got)
		}
		if err.Error() != "msg" {
			t.Errorf("%v: expected message passthrough, got %q", kind, err.Error())
		}
	}

	err := serviceError(errors.New("disk full"))
	if got := statusOf(t, err); got != http.StatusInternalServerError {
		t.Errorf("expected 500 for unknown error, got %d", got)
	}
	body := err.(*ErrorBody)
	if body.Message != "Internal server error" || body.Detail != "disk full" {
		t.Errorf("unexpected 500 body %+v", body)
	}
}

func TestNewErrorBody_RemapsUnprocessable(t *testing.T) {
	err := huma.NewError(http.StatusUnprocessableEntity, "validation failed", errors.New("expected number"))
	if err.GetStatus() != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.GetStatus())
	}
	body := err.(*ErrorBody)
	if len(body.Errors) != 1 || body.Errors[0] != "expected number" {
		t.Errorf("unexpected details %v", body.Errors)
	}
}
