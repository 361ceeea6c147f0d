package handler

import (
	"net/http"
	"strconv"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/service"
	"github.com/go-chi/chi/v5"
)

// EventHandler holds the public catalog and event creation endpoints.
type EventHandler struct {
	svc *service.CatalogService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.CatalogService) *EventHandler {
	return &EventHandler{svc: svc}
}

// CreateEvent handles POST /events
// The new event enters moderation as pending and stays off public listings
// until approved.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), actor, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// ListEvents handles GET /events
// Supports category, search, sort, limit, and offset query parameters.
// Only approved events appear.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	events, err := h.svc.ListEvents(r.Context(), model.EventFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sort:     model.EventSort(q.Get("sort")),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	// Return an empty array rather than null for better client compatibility.
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// GetEvent handles GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
