package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// reserveSeats locks the event row and claims seats for the current
// transaction.
//
// SELECT ... FOR UPDATE acquires a row-level exclusive lock on the event, so
// concurrent submits near capacity serialise instead of both reading the same
// free-seat snapshot and overbooking. The increment happens inside the same
// transaction; nothing is visible until the caller commits.
func reserveSeats(ctx context.Context, tx pgx.Tx, eventID string, seats int) error {
	var capacity, registered int
	err := tx.QueryRow(ctx,
		`SELECT total_capacity, registered_count
		 FROM events
		 WHERE id = $1
		 FOR UPDATE`,
		eventID,
	).Scan(&capacity, &registered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock event row: %w", err)
	}

	if registered+seats > capacity {
		return ErrEventFull
	}

	_, err = tx.Exec(ctx,
		`UPDATE events SET registered_count = registered_count + $2 WHERE id = $1`,
		eventID, seats,
	)
	if err != nil {
		return fmt.Errorf("increment registered_count: %w", err)
	}
	return nil
}
