// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer. Every mutating method takes
// an explicit actor rather than consulting global session state.
package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrForbidden is returned when the actor lacks the role an operation
// requires.
var ErrForbidden = errors.New("insufficient permissions")

// ErrInvalidCredentials is returned on login with an unknown email or a
// wrong password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEventNotBookable is returned when submitting against an event that has
// not passed moderation.
var ErrEventNotBookable = errors.New("event is not open for booking")

// ErrBookingNotOpen is returned when submitting before the event's booking
// opening date.
var ErrBookingNotOpen = errors.New("booking has not opened yet")

// ErrInvalidTicketType is returned for a paid submit whose ticket type is not
// standard, vip, or group.
var ErrInvalidTicketType = errors.New("unrecognised ticket type")

// validate is shared by all services; request structs carry the tags.
var validate = validator.New()
