package service

import (
	"errors"
	"fmt"
)

// Kind classifies a business-rule failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindUnauthorized
	KindInvalidCapacity
	KindInvalidDate
	KindDuplicateReservation
	KindInvalidTransition
	KindInvalidCredentials
	KindDuplicateUser
	KindValidation
)

var kindNames = map[Kind]string{
	KindNotFound:             "not_found",
	KindUnauthorized:         "unauthorized",
	KindInvalidCapacity:      "invalid_capacity",
	KindInvalidDate:          "invalid_date",
	KindDuplicateReservation: "duplicate_reservation",
	KindInvalidTransition:    "invalid_transition",
	KindInvalidCredentials:   "invalid_credentials",
	KindDuplicateUser:        "duplicate_user",
	KindValidation:           "validation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by services for every expected failure. Message is
// safe to show to API clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or 0 when err is not a service
// error.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return 0
}
