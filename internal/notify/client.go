// Package notify is the client for the transactional email functions.
// Dispatch is best-effort: callers log failures and never roll back the
// primary write because an email did not go out.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eventease/eventease/internal/config"
)

// RegistrationEmail is the payload for the send-registration-email function.
type RegistrationEmail struct {
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	EventName string `json:"eventName"`
	EventDate string `json:"eventDate"`
	Venue     string `json:"venue"`
	City      string `json:"city"`
}

// BookingEmail is the payload for the send-booking-email function.
type BookingEmail struct {
	Email            string  `json:"email"`
	CardholderName   string  `json:"cardholderName"`
	EventName        string  `json:"eventName"`
	EventDate        string  `json:"eventDate"`
	Venue            string  `json:"venue"`
	City             string  `json:"city"`
	TicketType       string  `json:"ticketType"`
	Quantity         int     `json:"quantity"`
	TotalAmount      float64 `json:"totalAmount"`
	BookingReference string  `json:"bookingReference"`
}

// Client posts email payloads to the configured function endpoints.
type Client struct {
	registrationURL string
	bookingURL      string
	http            *http.Client
}

// NewClient constructs a Client with the configured timeout.
func NewClient(cfg config.NotifyConfig) *Client {
	return &Client{
		registrationURL: cfg.RegistrationEmailURL,
		bookingURL:      cfg.BookingEmailURL,
		http:            &http.Client{Timeout: cfg.Timeout},
	}
}

// SendRegistrationEmail dispatches a free-registration confirmation.
func (c *Client) SendRegistrationEmail(ctx context.Context, payload RegistrationEmail) error {
	return c.post(ctx, c.registrationURL, payload)
}

// SendBookingEmail dispatches a paid-booking confirmation.
func (c *Client) SendBookingEmail(ctx context.Context, payload BookingEmail) error {
	return c.post(ctx, c.bookingURL, payload)
}

func (c *Client) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The functions return {"error": "..."} with a non-200 status.
		var e struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&e); decodeErr == nil && e.Error != "" {
			return fmt.Errorf("email function returned %d: %s", resp.StatusCode, e.Error)
		}
		return fmt.Errorf("email function returned %d", resp.StatusCode)
	}
	return nil
}
