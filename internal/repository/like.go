package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepository handles persistence for event likes.
type LikeRepository struct {
	db *pgxpool.Pool
}

// NewLikeRepository constructs a LikeRepository.
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{db: db}
}

// Toggle flips the like relation for (eventID, userID) and reports the new
// state. The delete and the conflict-guarded insert are each single atomic
// statements, so a rapid double toggle lands on distinct rounds instead of
// racing a read-then-write pair; the (event_id, user_id) unique constraint
// backs the insert.
func (r *LikeRepository) Toggle(ctx context.Context, eventID, userID string) (liked bool, err error) {
	var deletedID string
	err = r.db.QueryRow(ctx,
		`DELETE FROM event_likes WHERE event_id = $1 AND user_id = $2 RETURNING id`,
		eventID, userID,
	).Scan(&deletedID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("delete like: %w", err)
	}

	// A concurrent toggle may insert first; ON CONFLICT makes that a no-op
	// and either way the pair ends up liked.
	_, err = r.db.Exec(ctx,
		`INSERT INTO event_likes (id, event_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (event_id, user_id) DO NOTHING`,
		uuid.New().String(), eventID, userID, time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	return true, nil
}

// Count returns the number of likes for an event.
func (r *LikeRepository) Count(ctx context.Context, eventID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_likes WHERE event_id = $1`, eventID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}
