package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventease/eventease/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceRepository handles persistence for payment invoices.
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository constructs an InvoiceRepository.
func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create persists an invoice. The invoice number is drawn from a database
// sequence, so it stays unique under concurrent creation.
func (r *InvoiceRepository) Create(ctx context.Context, inv *model.Invoice) (*model.Invoice, error) {
	var seq int64
	if err := r.db.QueryRow(ctx,
		`SELECT nextval('invoice_number_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next invoice number: %w", err)
	}

	inv.ID = uuid.New().String()
	inv.InvoiceNumber = fmt.Sprintf("INV-%d-%06d", inv.IssuedAt.Year(), seq)

	_, err := r.db.Exec(ctx,
		`INSERT INTO payment_invoices
			(id, booking_id, user_id, invoice_number, subtotal, tax_amount, total_amount,
			 status, payment_method, issued_at, due_date)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		inv.ID, inv.BookingID, inv.UserID, inv.InvoiceNumber,
		inv.Subtotal, inv.TaxAmount, inv.TotalAmount,
		inv.Status, inv.PaymentMethod, inv.IssuedAt, inv.DueDate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return inv, nil
}

// GetByID returns a single invoice or ErrNotFound.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.QueryRow(ctx,
		`SELECT id, booking_id, user_id, invoice_number, subtotal, tax_amount, total_amount,
			status, payment_method, issued_at, due_date
		 FROM payment_invoices WHERE id = $1`,
		id,
	).Scan(
		&inv.ID, &inv.BookingID, &inv.UserID, &inv.InvoiceNumber,
		&inv.Subtotal, &inv.TaxAmount, &inv.TotalAmount,
		&inv.Status, &inv.PaymentMethod, &inv.IssuedAt, &inv.DueDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// InvoiceDetail bundles an invoice with its related booking and event.
// Booking or Event may be nil when the related row has been deleted;
// rendering substitutes placeholders instead of failing.
type InvoiceDetail struct {
	Invoice model.Invoice
	Booking *model.Booking
	Event   *model.Event
}

// GetDetail fetches an invoice together with its booking and event.
// Missing relations are returned as nil, not as errors.
func (r *InvoiceRepository) GetDetail(ctx context.Context, id string) (*InvoiceDetail, error) {
	inv, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &InvoiceDetail{Invoice: *inv}

	var b model.Booking
	err = r.db.QueryRow(ctx,
		`SELECT id, event_id, user_id, ticket_type, quantity, total_amount,
			payment_status, booking_reference, cardholder_name, created_at
		 FROM event_bookings WHERE id = $1`,
		inv.BookingID,
	).Scan(
		&b.ID, &b.EventID, &b.UserID, &b.TicketType, &b.Quantity, &b.TotalAmount,
		&b.PaymentStatus, &b.BookingReference, &b.CardholderName, &b.CreatedAt,
	)
	switch {
	case err == nil:
		detail.Booking = &b
	case errors.Is(err, pgx.ErrNoRows):
		// booking deleted; render with placeholders
	default:
		return nil, fmt.Errorf("get invoice booking: %w", err)
	}

	if detail.Booking != nil {
		e, err := scanEvent(r.db.QueryRow(ctx,
			`SELECT `+eventColumns+` FROM events WHERE id = $1`, detail.Booking.EventID))
		switch {
		case err == nil:
			detail.Event = e
		case errors.Is(err, pgx.ErrNoRows):
			// event deleted; render with placeholders
		default:
			return nil, fmt.Errorf("get invoice event: %w", err)
		}
	}

	return detail, nil
}
