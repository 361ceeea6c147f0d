package service

import (
	"context"

	"github.com/eventease/eventease/internal/invoice"
	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/repository"
)

// InvoiceReader is the invoice persistence the read/render paths depend on.
type InvoiceReader interface {
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	GetDetail(ctx context.Context, id string) (*repository.InvoiceDetail, error)
}

// InvoiceService serves stored invoices and renders them as printable HTML.
type InvoiceService struct {
	invoices InvoiceReader
}

// NewInvoiceService constructs an InvoiceService.
func NewInvoiceService(invoices InvoiceReader) *InvoiceService {
	return &InvoiceService{invoices: invoices}
}

// GetInvoice returns an invoice to its owner or an admin.
func (s *InvoiceService) GetInvoice(ctx context.Context, actor model.Actor, id string) (*model.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return inv, nil
}

// RenderInvoice produces the printable HTML document for an invoice. Missing
// related rows degrade to placeholder fields rather than failing the render.
func (s *InvoiceService) RenderInvoice(ctx context.Context, actor model.Actor, id string) (string, error) {
	detail, err := s.invoices.GetDetail(ctx, id)
	if err != nil {
		return "", err
	}
	if detail.Invoice.UserID != actor.UserID && !actor.IsAdmin() {
		return "", ErrForbidden
	}
	return invoice.Render(invoice.DocumentFrom(detail.Invoice, detail.Booking, detail.Event))
}

var _ InvoiceReader = (*repository.InvoiceRepository)(nil)
