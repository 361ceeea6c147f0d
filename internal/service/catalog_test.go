package service

import (
	"context"
	"testing"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateEvent() model.CreateEventRequest {
	return model.CreateEventRequest{
		Name:          "Go Meetup",
		Category:      "technology",
		Venue:         "Community Hall",
		City:          "Berlin",
		EventDate:     "2026-11-20",
		TotalCapacity: 80,
		PriceStandard: 25,
	}
}

func TestCreateEventEntersModerationPending(t *testing.T) {
	store := newMemStore()
	svc := NewCatalogService(store)
	actor := model.Actor{UserID: "organizer-1"}

	event, err := svc.CreateEvent(context.Background(), actor, validCreateEvent())
	require.NoError(t, err)

	assert.Equal(t, model.EventPending, event.Status)
	assert.Equal(t, "organizer-1", event.OrganizerID)
	assert.Equal(t, 2026, event.EventDate.Year())
	assert.Equal(t, 0, event.RegisteredCount)
}

func TestCreateEventValidation(t *testing.T) {
	store := newMemStore()
	svc := NewCatalogService(store)
	actor := model.Actor{UserID: "organizer-1"}

	tests := []struct {
		name   string
		mutate func(*model.CreateEventRequest)
	}{
		{"missing name", func(r *model.CreateEventRequest) { r.Name = "" }},
		{"zero capacity", func(r *model.CreateEventRequest) { r.TotalCapacity = 0 }},
		{"capacity too large", func(r *model.CreateEventRequest) { r.TotalCapacity = 200000 }},
		{"bad date", func(r *model.CreateEventRequest) { r.EventDate = "20/11/2026" }},
		{"paid without price", func(r *model.CreateEventRequest) { r.PriceStandard = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateEvent()
			tt.mutate(&req)
			_, err := svc.CreateEvent(context.Background(), actor, req)
			assert.Error(t, err)
		})
	}
}

func TestCreateFreeEventNeedsNoPrice(t *testing.T) {
	store := newMemStore()
	svc := NewCatalogService(store)

	req := validCreateEvent()
	req.FreeEvent = true
	req.PriceStandard = 0

	_, err := svc.CreateEvent(context.Background(), model.Actor{UserID: "o1"}, req)
	assert.NoError(t, err)
}

func TestGetEventHidesUnapproved(t *testing.T) {
	store := newMemStore()
	svc := NewCatalogService(store)
	ctx := context.Background()

	for _, status := range []model.EventStatus{model.EventPending, model.EventRejected} {
		event := store.addEvent(model.Event{Name: "Hidden", Status: status})
		_, err := svc.GetEvent(ctx, event.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound, "status %s must be invisible", status)
	}

	visible := store.addEvent(model.Event{Name: "Visible", Status: model.EventApproved})
	got, err := svc.GetEvent(ctx, visible.ID)
	require.NoError(t, err)
	assert.Equal(t, visible.ID, got.ID)
}

func TestListEventsOnlyApproved(t *testing.T) {
	store := newMemStore()
	svc := NewCatalogService(store)

	store.addEvent(model.Event{Name: "P", Category: "music", Status: model.EventPending})
	store.addEvent(model.Event{Name: "R", Category: "music", Status: model.EventRejected})
	store.addEvent(model.Event{Name: "A", Category: "music", Status: model.EventApproved})

	events, err := svc.ListEvents(context.Background(), model.EventFilter{Category: "music"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "A", events[0].Name)
}
