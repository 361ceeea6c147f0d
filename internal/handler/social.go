package handler

import (
	"net/http"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/service"
	"github.com/go-chi/chi/v5"
)

// SocialHandler holds the like and review endpoints.
type SocialHandler struct {
	svc *service.SocialService
}

// NewSocialHandler constructs a SocialHandler.
func NewSocialHandler(svc *service.SocialService) *SocialHandler {
	return &SocialHandler{svc: svc}
}

// ToggleLike handles POST /events/{id}/like
func (h *SocialHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	result, err := h.svc.ToggleLike(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// SubmitReview handles POST /events/{id}/reviews
// A repeat submit for the same event updates the existing review in place.
func (h *SocialHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req model.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	review, err := h.svc.SubmitReview(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// ListReviews handles GET /events/{id}/reviews
func (h *SocialHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}
