package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/notify"
	"github.com/eventease/eventease/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventGetter resolves events for the submit flow.
type EventGetter interface {
	GetByID(ctx context.Context, id string) (*model.Event, error)
}

// RegistrationStore persists free-event registrations.
type RegistrationStore interface {
	Create(ctx context.Context, reg *model.Registration) (*model.Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error)
}

// BookingStore persists paid bookings.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) (*model.Booking, error)
}

// InvoiceStore persists invoices.
type InvoiceStore interface {
	Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error)
}

// Notifier dispatches transactional emails. Failures are logged, never
// propagated: the registration or booking row is already committed.
type Notifier interface {
	SendRegistrationEmail(ctx context.Context, payload notify.RegistrationEmail) error
	SendBookingEmail(ctx context.Context, payload notify.BookingEmail) error
}

// BookingService decides whether a submit is a free registration or a paid
// booking, computes totals, persists the result, and derives the invoice.
type BookingService struct {
	events        EventGetter
	registrations RegistrationStore
	bookings      BookingStore
	invoices      InvoiceStore
	notifier      Notifier
	log           *zap.Logger
	now           func() time.Time
}

// NewBookingService constructs a BookingService.
func NewBookingService(
	events EventGetter,
	registrations RegistrationStore,
	bookings BookingStore,
	invoices InvoiceStore,
	notifier Notifier,
	log *zap.Logger,
) *BookingService {
	return &BookingService{
		events:        events,
		registrations: registrations,
		bookings:      bookings,
		invoices:      invoices,
		notifier:      notifier,
		log:           log,
		now:           time.Now,
	}
}

const taxRate = 0.10

// Submit routes the request down the free or paid path depending on the
// event's free_event flag.
func (s *BookingService) Submit(ctx context.Context, actor model.Actor, eventID string, req model.SubmitRequest) (*model.SubmitResult, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != model.EventApproved {
		return nil, ErrEventNotBookable
	}
	if !event.BookingOpen(s.now()) {
		return nil, ErrBookingNotOpen
	}

	if event.FreeEvent {
		return s.submitFree(ctx, actor, event, req)
	}
	return s.submitPaid(ctx, actor, event, req)
}

func (s *BookingService) submitFree(ctx context.Context, actor model.Actor, event *model.Event, req model.SubmitRequest) (*model.SubmitResult, error) {
	reg, err := s.registrations.Create(ctx, &model.Registration{
		EventID:             event.ID,
		UserID:              actor.UserID,
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		GroupSize:           req.Quantity,
		DietaryRequirements: req.DietaryRequirements,
		AccessibilityNeeds:  req.AccessibilityNeeds,
		EmergencyContact:    req.EmergencyContact,
		RegistrationType:    "individual",
		Status:              "approved",
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.SendRegistrationEmail(ctx, notify.RegistrationEmail{
		Email:     reg.Email,
		FullName:  reg.FullName,
		EventName: event.Name,
		EventDate: event.EventDate.Format("2006-01-02"),
		Venue:     event.Venue,
		City:      event.City,
	}); err != nil {
		s.log.Warn("registration email dispatch failed",
			zap.String("registration_id", reg.ID),
			zap.Error(err))
	}

	return &model.SubmitResult{Registration: reg}, nil
}

func (s *BookingService) submitPaid(ctx context.Context, actor model.Actor, event *model.Event, req model.SubmitRequest) (*model.SubmitResult, error) {
	ticketType := model.TicketType(req.TicketType)
	unitPrice, ok := event.UnitPrice(ticketType)
	if !ok {
		return nil, ErrInvalidTicketType
	}

	booking, err := s.bookings.Create(ctx, &model.Booking{
		EventID:          event.ID,
		UserID:           actor.UserID,
		TicketType:       ticketType,
		Quantity:         req.Quantity,
		TotalAmount:      round2(unitPrice * float64(req.Quantity)),
		PaymentStatus:    "completed", // payment is simulated, no gateway
		BookingReference: newBookingReference(),
		CardholderName:   req.CardholderName,
	})
	if err != nil {
		return nil, err
	}

	inv, err := s.invoices.Create(ctx, BuildInvoice(booking, s.now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("generate invoice: %w", err)
	}

	if err := s.notifier.SendBookingEmail(ctx, notify.BookingEmail{
		Email:            req.Email,
		CardholderName:   booking.CardholderName,
		EventName:        event.Name,
		EventDate:        event.EventDate.Format("2006-01-02"),
		Venue:            event.Venue,
		City:             event.City,
		TicketType:       string(booking.TicketType),
		Quantity:         booking.Quantity,
		TotalAmount:      booking.TotalAmount,
		BookingReference: booking.BookingReference,
	}); err != nil {
		s.log.Warn("booking email dispatch failed",
			zap.String("booking_id", booking.ID),
			zap.Error(err))
	}

	return &model.SubmitResult{Booking: booking, Invoice: inv}, nil
}

// ListRegistrations returns an event's registrations to its organizer or an
// admin.
func (s *BookingService) ListRegistrations(ctx context.Context, actor model.Actor, eventID string) ([]model.Registration, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.registrations.ListByEvent(ctx, eventID)
}

// BuildInvoice derives an invoice from a completed booking: 10% tax on the
// booking total, due 30 days after issue. The invoice number is assigned by
// the store.
func BuildInvoice(b *model.Booking, issuedAt time.Time) *model.Invoice {
	subtotal := b.TotalAmount
	return &model.Invoice{
		BookingID:     b.ID,
		UserID:        b.UserID,
		Subtotal:      subtotal,
		TaxAmount:     round2(subtotal * taxRate),
		TotalAmount:   round2(subtotal * (1 + taxRate)),
		Status:        "paid",
		PaymentMethod: "credit_card",
		IssuedAt:      issuedAt,
		DueDate:       issuedAt.AddDate(0, 0, 30),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func newBookingReference() string {
	return "EE-" + strings.ToUpper(uuid.New().String()[:8])
}

// ensure the repository satisfies the narrow store interfaces
var (
	_ EventGetter       = (*repository.EventRepository)(nil)
	_ RegistrationStore = (*repository.RegistrationRepository)(nil)
	_ BookingStore      = (*repository.BookingRepository)(nil)
	_ InvoiceStore      = (*repository.InvoiceRepository)(nil)
	_ Notifier          = (*notify.Client)(nil)
)
