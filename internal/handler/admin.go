package handler

import (
	"net/http"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/service"
	"github.com/go-chi/chi/v5"
)

// AdminHandler holds the moderation endpoints. Routes are mounted behind
// RequireAuth + RequireAdmin.
type AdminHandler struct {
	svc *service.ModerationService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(svc *service.ModerationService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListAllEvents handles GET /admin/events
// Returns every event bucketed by moderation status.
func (h *AdminHandler) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	buckets, err := h.svc.ListAll(r.Context(), actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

// Moderate handles POST /admin/events/{id}/moderate
// Moves a pending event to approved or rejected; decided states are terminal.
func (h *AdminHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.ModerateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.Moderate(r.Context(), actor, chi.URLParam(r, "id"), req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
