// Package invoice renders a payment invoice as a self-contained printable
// HTML document.
package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/eventease/eventease/internal/model"
)

// Document holds the fully resolved fields of a printable invoice. Every
// field is already a display value; missing relations have been replaced
// with placeholders.
type Document struct {
	InvoiceNumber string
	IssuedAt      string
	DueDate       string
	Status        string
	PaymentMethod string

	EventName string
	EventDate string
	Venue     string
	City      string

	BookingReference string
	CardholderName   string
	TicketType       string
	Quantity         int
	UnitLine         string

	Subtotal    string
	TaxAmount   string
	TotalAmount string
}

const placeholder = "N/A"

// DocumentFrom builds a Document from an invoice and its (possibly missing)
// related booking and event. A deleted relation degrades individual fields
// to "N/A" or 0 instead of failing the render.
func DocumentFrom(inv model.Invoice, booking *model.Booking, event *model.Event) Document {
	doc := Document{
		InvoiceNumber: orPlaceholder(inv.InvoiceNumber),
		IssuedAt:      formatDate(inv.IssuedAt),
		DueDate:       formatDate(inv.DueDate),
		Status:        orPlaceholder(inv.Status),
		PaymentMethod: orPlaceholder(inv.PaymentMethod),

		EventName: placeholder,
		EventDate: placeholder,
		Venue:     placeholder,
		City:      placeholder,

		BookingReference: placeholder,
		CardholderName:   placeholder,
		TicketType:       placeholder,

		Subtotal:    formatAmount(inv.Subtotal),
		TaxAmount:   formatAmount(inv.TaxAmount),
		TotalAmount: formatAmount(inv.TotalAmount),
	}

	if booking != nil {
		doc.BookingReference = orPlaceholder(booking.BookingReference)
		doc.CardholderName = orPlaceholder(booking.CardholderName)
		doc.TicketType = orPlaceholder(string(booking.TicketType))
		doc.Quantity = booking.Quantity
		if booking.Quantity > 0 {
			unit := booking.TotalAmount / float64(booking.Quantity)
			doc.UnitLine = fmt.Sprintf("%d × %s", booking.Quantity, formatAmount(unit))
		}
	}
	if event != nil {
		doc.EventName = orPlaceholder(event.Name)
		doc.EventDate = formatDate(event.EventDate)
		doc.Venue = orPlaceholder(event.Venue)
		doc.City = orPlaceholder(event.City)
	}
	return doc
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.Format("02 Jan 2006")
}

func formatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

var tmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #1f2430; margin: 40px; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #1f2430; padding-bottom: 16px; }
  .brand { font-size: 26px; font-weight: bold; }
  .meta { text-align: right; font-size: 13px; }
  h2 { font-size: 16px; margin: 28px 0 8px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th, td { text-align: left; padding: 8px 10px; border-bottom: 1px solid #d8dbe2; font-size: 14px; }
  th { background: #f2f3f7; }
  .totals td { border: none; padding: 4px 10px; }
  .totals .grand { font-weight: bold; font-size: 16px; border-top: 2px solid #1f2430; }
  .right { text-align: right; }
  .status { display: inline-block; padding: 2px 10px; border-radius: 10px; background: #e2f6e5; color: #1e7b2d; font-size: 12px; text-transform: uppercase; }
  @media print { body { margin: 10mm; } }
</style>
</head>
<body>
  <div class="header">
    <div class="brand">EventEase</div>
    <div class="meta">
      <div>Invoice <strong>{{.InvoiceNumber}}</strong></div>
      <div>Issued: {{.IssuedAt}}</div>
      <div>Due: {{.DueDate}}</div>
      <div><span class="status">{{.Status}}</span></div>
    </div>
  </div>

  <h2>Event</h2>
  <table>
    <tr><th>Event</th><th>Date</th><th>Venue</th><th>City</th></tr>
    <tr><td>{{.EventName}}</td><td>{{.EventDate}}</td><td>{{.Venue}}</td><td>{{.City}}</td></tr>
  </table>

  <h2>Booking</h2>
  <table>
    <tr><th>Reference</th><th>Cardholder</th><th>Ticket type</th><th>Tickets</th></tr>
    <tr><td>{{.BookingReference}}</td><td>{{.CardholderName}}</td><td>{{.TicketType}}</td><td>{{if .UnitLine}}{{.UnitLine}}{{else}}{{.Quantity}}{{end}}</td></tr>
  </table>

  <h2>Payment</h2>
  <table class="totals">
    <tr><td>Payment method</td><td class="right">{{.PaymentMethod}}</td></tr>
    <tr><td>Subtotal</td><td class="right">{{.Subtotal}}</td></tr>
    <tr><td>Tax (10%)</td><td class="right">{{.TaxAmount}}</td></tr>
    <tr class="grand"><td class="grand">Total</td><td class="grand right">{{.TotalAmount}}</td></tr>
  </table>
</body>
</html>
`))

// Render fills the invoice template and returns the HTML document.
func Render(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render invoice: %w", err)
	}
	return buf.String(), nil
}
