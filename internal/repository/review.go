package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewRepository handles persistence for event reviews.
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Upsert creates the user's review for an event or updates it in place.
// The unique (event_id, user_id) constraint turns the second submit into an
// UPDATE that keeps the original row id and created_at.
func (r *ReviewRepository) Upsert(ctx context.Context, rev *model.Review) (*model.Review, error) {
	now := time.Now().UTC()
	err := r.db.QueryRow(ctx,
		`INSERT INTO event_reviews (id, event_id, user_id, rating, comment, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 ON CONFLICT (event_id, user_id) DO UPDATE
			SET rating = EXCLUDED.rating,
			    comment = EXCLUDED.comment,
			    updated_at = EXCLUDED.updated_at
		 RETURNING id, created_at, updated_at`,
		uuid.New().String(), rev.EventID, rev.UserID, rev.Rating, rev.Comment, now,
	).Scan(&rev.ID, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert review: %w", err)
	}
	return rev, nil
}

// ListByEvent returns all reviews for an event with reviewer names, newest
// first.
func (r *ReviewRepository) ListByEvent(ctx context.Context, eventID string) ([]model.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rv.id, rv.event_id, rv.user_id, COALESCE(u.full_name, ''), rv.rating,
			COALESCE(rv.comment, ''), rv.created_at, rv.updated_at
		 FROM event_reviews rv
		 LEFT JOIN users u ON u.id = rv.user_id
		 WHERE rv.event_id = $1
		 ORDER BY rv.updated_at DESC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(
			&rev.ID, &rev.EventID, &rev.UserID, &rev.ReviewerName, &rev.Rating,
			&rev.Comment, &rev.CreatedAt, &rev.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
