package handler

import (
	"net/http"

	"github.com/eventease/eventease/internal/service"
	"github.com/go-chi/chi/v5"
)

// InvoiceHandler holds the invoice read and render endpoints.
type InvoiceHandler struct {
	svc *service.InvoiceService
}

// NewInvoiceHandler constructs an InvoiceHandler.
func NewInvoiceHandler(svc *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// GetInvoice handles GET /invoices/{id}
func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	inv, err := h.svc.GetInvoice(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// RenderInvoice handles GET /invoices/{id}/html
// Returns a self-contained printable HTML document.
func (h *InvoiceHandler) RenderInvoice(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	html, err := h.svc.RenderInvoice(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
