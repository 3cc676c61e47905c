package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-booking-api/internal/auth"
	"github.com/gdg-garage/tour-booking-api/internal/service"
)

// ErrorBody is the JSON error shape of every API response.
type ErrorBody struct {
	status  int
	Message string   `json:"message"`
	Detail  string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *ErrorBody) Error() string {
	return e.Message
}

func (e *ErrorBody) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = newErrorBody
}

// newErrorBody replaces huma's RFC 7807 errors. Schema violations are
// reported as 400 rather than 422.
func newErrorBody(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}
	body := &ErrorBody{status: status, Message: msg}
	for _, err := range errs {
		if err != nil {
			body.Errors = append(body.Errors, err.Error())
		}
	}
	return body
}

var statusByKind = map[service.Kind]int{
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

// serviceError maps a service failure to its HTTP error.
func serviceError(err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		if status, ok := statusByKind[svcErr.Kind]; ok {
			return huma.NewError(status, svcErr.Message)
		}
	}
	log.Printf("Unhandled service error: %v", err)
	return &ErrorBody{status: http.StatusInternalServerError, Message: "Internal server error", Detail: err.Error()}
}

func currentUserID(ctx context.Context) (string, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", huma.Error401Unauthorized("Authentication required")
	}
	return userID, nil
}
