// Package model defines the core domain types for the EventEase platform.
package model

import "time"

// EventStatus is the moderation lifecycle gate controlling public visibility.
type EventStatus string

const (
	EventPending  EventStatus = "pending"
	EventApproved EventStatus = "approved"
	EventRejected EventStatus = "rejected"
)

// IsValid reports whether s is a recognised moderation status.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventPending, EventApproved, EventRejected:
		return true
	}
	return false
}

// TicketType selects which price column applies to a paid booking.
type TicketType string

const (
	TicketStandard TicketType = "standard"
	TicketVIP      TicketType = "vip"
	TicketGroup    TicketType = "group"
)

// IsValid reports whether t is one of the three recognised ticket types.
func (t TicketType) IsValid() bool {
	switch t {
	case TicketStandard, TicketVIP, TicketGroup:
		return true
	}
	return false
}

// Event represents a bookable event created by an organizer.
// Only events with Status == EventApproved appear on public read paths.
type Event struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Category           string      `json:"category"`
	Description        string      `json:"description"`
	ShortDescription   string      `json:"short_description"`
	Venue              string      `json:"venue"`
	City               string      `json:"city"`
	EventDate          time.Time   `json:"event_date"`
	EventTime          string      `json:"event_time"`
	BookingOpeningDate time.Time   `json:"booking_opening_date"`
	TotalCapacity      int         `json:"total_capacity"`
	RegisteredCount    int         `json:"registered_count"`
	PriceStandard      float64     `json:"price_standard"`
	PriceVIP           float64     `json:"price_vip"`
	PriceGroup         float64     `json:"price_group"`
	FreeEvent          bool        `json:"free_event"`
	Status             EventStatus `json:"status"`
	Likes              int         `json:"likes"`
	Rating             float64     `json:"rating"`
	OrganizerID        string      `json:"organizer_id"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// Remaining returns the number of available seats.
func (e *Event) Remaining() int {
	return e.TotalCapacity - e.RegisteredCount
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.TotalCapacity
}

// UnitPrice resolves the per-ticket price for the given ticket type.
// The second return value is false for unrecognised types so callers can
// reject them instead of booking at a zero price.
func (e *Event) UnitPrice(t TicketType) (float64, bool) {
	switch t {
	case TicketStandard:
		return e.PriceStandard, true
	case TicketVIP:
		return e.PriceVIP, true
	case TicketGroup:
		return e.PriceGroup, true
	}
	return 0, false
}

// BookingOpen reports whether booking has opened as of now.
func (e *Event) BookingOpen(now time.Time) bool {
	return !now.Before(e.BookingOpeningDate)
}

// EventSort enumerates the supported catalog orderings.
type EventSort string

const (
	SortByDate   EventSort = "date"
	SortByPrice  EventSort = "price"
	SortByRating EventSort = "rating"
	SortByNewest EventSort = "newest"
)

// EventFilter narrows and orders public catalog listings.
// Zero values mean "no constraint"; Limit defaults are applied by the caller.
type EventFilter struct {
	Category string
	Search   string // matches name or city, case-insensitive
	Sort     EventSort
	Limit    int
	Offset   int
}
