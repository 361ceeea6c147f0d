package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventColumns = `id, name, category, description, short_description, venue, city,
	event_date, event_time, booking_opening_date,
	total_capacity, registered_count,
	price_standard, price_vip, price_group, free_event,
	status, likes, rating, organizer_id, created_at, updated_at`

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Category, &e.Description, &e.ShortDescription, &e.Venue, &e.City,
		&e.EventDate, &e.EventTime, &e.BookingOpeningDate,
		&e.TotalCapacity, &e.RegisteredCount,
		&e.PriceStandard, &e.PriceVIP, &e.PriceGroup, &e.FreeEvent,
		&e.Status, &e.Likes, &e.Rating, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new event in the pending moderation state.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	now := time.Now().UTC()
	e.ID = uuid.New().String()
	e.Status = model.EventPending
	e.RegisteredCount = 0
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO events (id, name, category, description, short_description, venue, city,
			event_date, event_time, booking_opening_date,
			total_capacity, registered_count,
			price_standard, price_vip, price_group, free_event,
			status, likes, rating, organizer_id, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		e.ID, e.Name, e.Category, e.Description, e.ShortDescription, e.Venue, e.City,
		e.EventDate, e.EventTime, e.BookingOpeningDate,
		e.TotalCapacity, e.RegisteredCount,
		e.PriceStandard, e.PriceVIP, e.PriceGroup, e.FreeEvent,
		e.Status, e.Likes, e.Rating, e.OrganizerID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return e, nil
}

// GetByID returns a single event regardless of moderation status,
// or ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// ListApproved returns approved events matching the filter. Events that have
// not passed moderation never appear here, whatever the filter says.
func (r *EventRepository) ListApproved(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = 'approved'`
	args := []any{}

	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		query += fmt.Sprintf(" AND (LOWER(name) LIKE $%d OR LOWER(city) LIKE $%d)", len(args), len(args))
	}

	switch f.Sort {
	case model.SortByPrice:
		query += " ORDER BY price_standard ASC"
	case model.SortByRating:
		query += " ORDER BY rating DESC"
	case model.SortByNewest:
		query += " ORDER BY created_at DESC"
	default:
		query += " ORDER BY event_date ASC"
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// ListAll returns every event regardless of status, newest first.
// Used by the admin moderation view.
func (r *EventRepository) ListAll(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// Moderate moves a pending event to approved or rejected. The WHERE clause
// makes decided states terminal: updating a non-pending row affects nothing
// and surfaces as ErrAlreadyModerated (or ErrNotFound if the id is unknown).
func (r *EventRepository) Moderate(ctx context.Context, id string, status model.EventStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events SET status = $2, updated_at = $3
		 WHERE id = $1 AND status = 'pending'`,
		id, status, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("moderate event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("moderate event: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrAlreadyModerated
	}
	return nil
}

// RefreshSocialCounters recomputes the denormalized likes count and average
// rating from the like and review tables. The counters are a derived view;
// nothing else writes them.
func (r *EventRepository) RefreshSocialCounters(ctx context.Context, eventID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE events SET
			likes = (SELECT COUNT(*) FROM event_likes WHERE event_id = $1),
			rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM event_reviews WHERE event_id = $1), 0),
			updated_at = $2
		 WHERE id = $1`,
		eventID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("refresh social counters: %w", err)
	}
	return nil
}
