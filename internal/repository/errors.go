// Package repository implements all database queries for EventEase.
// It uses pgx directly (no ORM) for transparency and performance.
package repository

import "errors"

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrEventFull is returned when an event has no remaining capacity
// for the requested number of seats.
var ErrEventFull = errors.New("event is fully booked")

// ErrAlreadyRegistered is returned when a user registers twice for
// the same free event.
var ErrAlreadyRegistered = errors.New("already registered for this event")

// ErrAlreadyModerated is returned when a moderation decision targets an
// event that has already left the pending state.
var ErrAlreadyModerated = errors.New("event has already been moderated")

// ErrDuplicateEmail is returned when signing up with an email that is
// already taken.
var ErrDuplicateEmail = errors.New("email already registered")
