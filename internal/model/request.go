package model

// Request payloads carry validator tags; services run them through a shared
// *validator.Validate instance before touching the store.

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

// LoginRequest is the payload for obtaining a session token.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateEventRequest is the payload for creating a new event.
// New events always enter moderation with status "pending".
type CreateEventRequest struct {
	Name               string  `json:"name" validate:"required"`
	Category           string  `json:"category" validate:"required"`
	Description        string  `json:"description"`
	ShortDescription   string  `json:"short_description"`
	Venue              string  `json:"venue" validate:"required"`
	City               string  `json:"city" validate:"required"`
	EventDate          string  `json:"event_date" validate:"required"`
	EventTime          string  `json:"event_time"`
	BookingOpeningDate string  `json:"booking_opening_date"`
	TotalCapacity      int     `json:"total_capacity" validate:"required,gt=0,lte=100000"`
	PriceStandard      float64 `json:"price_standard" validate:"gte=0"`
	PriceVIP           float64 `json:"price_vip" validate:"gte=0"`
	PriceGroup         float64 `json:"price_group" validate:"gte=0"`
	FreeEvent          bool    `json:"free_event"`
}

// SubmitRequest is the payload for POST /events/{id}/submit. The free and
// paid paths share it: attendee fields feed the Registration, ticket and
// cardholder fields feed the Booking.
type SubmitRequest struct {
	FullName            string `json:"full_name" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone"`
	Quantity            int    `json:"quantity" validate:"required,gte=1,lte=10"`
	TicketType          string `json:"ticket_type"`
	CardholderName      string `json:"cardholder_name"`
	DietaryRequirements string `json:"dietary_requirements"`
	AccessibilityNeeds  string `json:"accessibility_needs"`
	EmergencyContact    string `json:"emergency_contact"`
}

// ReviewRequest is the payload for submitting or updating a review.
// A zero rating means "no rating selected" and is rejected.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// ModerateRequest is the payload for the admin decision endpoint.
type ModerateRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// AuthResponse returns a session token together with the account it belongs to.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SubmitResult summarises the outcome of a single submit: exactly one of
// Registration (free path) or Booking+Invoice (paid path) is set.
type SubmitResult struct {
	Registration *Registration `json:"registration,omitempty"`
	Booking      *Booking      `json:"booking,omitempty"`
	Invoice      *Invoice      `json:"invoice,omitempty"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
