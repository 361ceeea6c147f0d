package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository handles persistence for paid bookings.
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository constructs a BookingRepository.
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking inside a capacity-checked transaction, claiming
// Quantity seats against the event under a row lock.
func (r *BookingRepository) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = reserveSeats(ctx, tx, b.EventID, b.Quantity); err != nil {
		return nil, err
	}

	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx,
		`INSERT INTO event_bookings
			(id, event_id, user_id, ticket_type, quantity, total_amount,
			 payment_status, booking_reference, cardholder_name, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		b.ID, b.EventID, b.UserID, b.TicketType, b.Quantity, b.TotalAmount,
		b.PaymentStatus, b.BookingReference, b.CardholderName, b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return b, nil
}

// GetByID returns a single booking or ErrNotFound.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	err := r.db.QueryRow(ctx,
		`SELECT id, event_id, user_id, ticket_type, quantity, total_amount,
			payment_status, booking_reference, cardholder_name, created_at
		 FROM event_bookings WHERE id = $1`,
		id,
	).Scan(
		&b.ID, &b.EventID, &b.UserID, &b.TicketType, &b.Quantity, &b.TotalAmount,
		&b.PaymentStatus, &b.BookingReference, &b.CardholderName, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

// ListByUser returns a user's bookings, newest first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, user_id, ticket_type, quantity, total_amount,
			payment_status, booking_reference, cardholder_name, created_at
		 FROM event_bookings
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.EventID, &b.UserID, &b.TicketType, &b.Quantity, &b.TotalAmount,
			&b.PaymentStatus, &b.BookingReference, &b.CardholderName, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
