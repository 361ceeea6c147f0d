package model

import "time"

// Registration records a free-event signup. Rows are immutable after creation.
type Registration struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"event_id"`
	UserID              string    `json:"user_id"`
	FullName            string    `json:"full_name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	GroupSize           int       `json:"group_size"`
	DietaryRequirements string    `json:"dietary_requirements,omitempty"`
	AccessibilityNeeds  string    `json:"accessibility_needs,omitempty"`
	EmergencyContact    string    `json:"emergency_contact,omitempty"`
	RegistrationType    string    `json:"registration_type"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

// Booking records a paid ticket purchase. Payment is simulated: the row is
// written with PaymentStatus "completed" and no gateway is involved.
type Booking struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	UserID           string     `json:"user_id"`
	TicketType       TicketType `json:"ticket_type"`
	Quantity         int        `json:"quantity"`
	TotalAmount      float64    `json:"total_amount"`
	PaymentStatus    string     `json:"payment_status"`
	BookingReference string     `json:"booking_reference"`
	CardholderName   string     `json:"cardholder_name"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Invoice is derived from a completed Booking: 10% tax on the booking total,
// due 30 days after issue. InvoiceNumber is sequence-backed and unique.
type Invoice struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	UserID        string    `json:"user_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Subtotal      float64   `json:"subtotal"`
	TaxAmount     float64   `json:"tax_amount"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	IssuedAt      time.Time `json:"issued_at"`
	DueDate       time.Time `json:"due_date"`
}
