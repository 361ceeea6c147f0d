package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistrationRepository handles persistence for free-event registrations.
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a registration inside a capacity-checked transaction.
// The event row is locked for the duration, the duplicate check runs under
// that lock, and GroupSize seats are claimed atomically with the insert.
func (r *RegistrationRepository) Create(ctx context.Context, reg *model.Registration) (*model.Registration, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = reserveSeats(ctx, tx, reg.EventID, reg.GroupSize); err != nil {
		return nil, err
	}

	var dup int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_registrations WHERE event_id = $1 AND user_id = $2`,
		reg.EventID, reg.UserID,
	).Scan(&dup)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if dup > 0 {
		err = ErrAlreadyRegistered
		return nil, err
	}

	reg.ID = uuid.New().String()
	reg.CreatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx,
		`INSERT INTO event_registrations
			(id, event_id, user_id, full_name, email, phone, group_size,
			 dietary_requirements, accessibility_needs, emergency_contact,
			 registration_type, status, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		reg.ID, reg.EventID, reg.UserID, reg.FullName, reg.Email, reg.Phone, reg.GroupSize,
		reg.DietaryRequirements, reg.AccessibilityNeeds, reg.EmergencyContact,
		reg.RegistrationType, reg.Status, reg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return reg, nil
}

// ListByEvent returns all registrations for a given event, oldest first.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]model.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, user_id, full_name, email, phone, group_size,
			dietary_requirements, accessibility_needs, emergency_contact,
			registration_type, status, created_at
		 FROM event_registrations
		 WHERE event_id = $1
		 ORDER BY created_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var reg model.Registration
		if err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.UserID, &reg.FullName, &reg.Email, &reg.Phone, &reg.GroupSize,
			&reg.DietaryRequirements, &reg.AccessibilityNeeds, &reg.EmergencyContact,
			&reg.RegistrationType, &reg.Status, &reg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
