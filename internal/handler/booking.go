package handler

import (
	"net/http"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/service"
	"github.com/go-chi/chi/v5"
)

// BookingHandler holds the submit and registration-listing endpoints.
type BookingHandler struct {
	svc *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Submit handles POST /events/{id}/submit
// Free events produce a Registration; paid events produce a Booking and its
// Invoice. Exactly one of the two shapes comes back.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.SubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.svc.Submit(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// ListRegistrations handles GET /events/{id}/registrations
// Restricted to the event's organizer and admins.
func (h *BookingHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	regs, err := h.svc.ListRegistrations(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if regs == nil {
		regs = []model.Registration{}
	}
	writeJSON(w, http.StatusOK, regs)
}
