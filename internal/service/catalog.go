package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/repository"
)

// EventCatalog is the event persistence the catalog service depends on.
type EventCatalog interface {
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	ListApproved(ctx context.Context, f model.EventFilter) ([]model.Event, error)
}

// CatalogService handles public event browsing and organizer event creation.
type CatalogService struct {
	events EventCatalog
	now    func() time.Time
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(events EventCatalog) *CatalogService {
	return &CatalogService{events: events, now: time.Now}
}

const maxPageSize = 100

// CreateEvent validates the request and persists a new pending event owned
// by the actor. Approval happens through the moderation workflow.
func (s *CatalogService) CreateEvent(ctx context.Context, actor model.Actor, req model.CreateEventRequest) (*model.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("event_date must be YYYY-MM-DD: %w", err)
	}
	openingDate := s.now().UTC()
	if req.BookingOpeningDate != "" {
		openingDate, err = time.Parse("2006-01-02", req.BookingOpeningDate)
		if err != nil {
			return nil, fmt.Errorf("booking_opening_date must be YYYY-MM-DD: %w", err)
		}
	}
	if !req.FreeEvent && req.PriceStandard <= 0 {
		return nil, fmt.Errorf("paid events need a standard ticket price")
	}

	return s.events.Create(ctx, &model.Event{
		Name:               req.Name,
		Category:           req.Category,
		Description:        req.Description,
		ShortDescription:   req.ShortDescription,
		Venue:              req.Venue,
		City:               req.City,
		EventDate:          eventDate,
		EventTime:          req.EventTime,
		BookingOpeningDate: openingDate,
		TotalCapacity:      req.TotalCapacity,
		PriceStandard:      req.PriceStandard,
		PriceVIP:           req.PriceVIP,
		PriceGroup:         req.PriceGroup,
		FreeEvent:          req.FreeEvent,
		OrganizerID:        actor.UserID,
	})
}

// ListEvents returns approved events matching the filter.
func (s *CatalogService) ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	if f.Limit <= 0 || f.Limit > maxPageSize {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.events.ListApproved(ctx, f)
}

// GetEvent returns a single approved event. Events still pending or rejected
// are indistinguishable from missing ones on this public path.
func (s *CatalogService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	if id == "" {
		return nil, repository.ErrNotFound
	}
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status != model.EventApproved {
		return nil, repository.ErrNotFound
	}
	return event, nil
}
