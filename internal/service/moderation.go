package service

import (
	"context"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/repository"
)

// ModerationStore is the event persistence the moderation workflow depends on.
type ModerationStore interface {
	Moderate(ctx context.Context, id string, status model.EventStatus) error
	ListAll(ctx context.Context) ([]model.Event, error)
}

// ModerationService gates catalog visibility: events enter as pending and an
// admin decides approved or rejected. Decided states are terminal.
type ModerationService struct {
	events ModerationStore
}

// NewModerationService constructs a ModerationService.
func NewModerationService(events ModerationStore) *ModerationService {
	return &ModerationService{events: events}
}

// Moderate applies an admin decision to a pending event.
func (s *ModerationService) Moderate(ctx context.Context, actor model.Actor, eventID string, req model.ModerateRequest) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	return s.events.Moderate(ctx, eventID, model.EventStatus(req.Status))
}

// EventBuckets splits the full event set by moderation status for the admin
// view. No pagination is applied here.
type EventBuckets struct {
	Pending  []model.Event `json:"pending"`
	Approved []model.Event `json:"approved"`
	Rejected []model.Event `json:"rejected"`
}

// ListAll returns every event bucketed by status. Admin only.
func (s *ModerationService) ListAll(ctx context.Context, actor model.Actor) (*EventBuckets, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	buckets := &EventBuckets{
		Pending:  []model.Event{},
		Approved: []model.Event{},
		Rejected: []model.Event{},
	}
	for _, e := range events {
		switch e.Status {
		case model.EventApproved:
			buckets.Approved = append(buckets.Approved, e)
		case model.EventRejected:
			buckets.Rejected = append(buckets.Rejected, e)
		default:
			buckets.Pending = append(buckets.Pending, e)
		}
	}
	return buckets, nil
}

var _ ModerationStore = (*repository.EventRepository)(nil)
