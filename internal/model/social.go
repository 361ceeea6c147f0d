package model

import "time"

// Like is a user's like relation on an event. The (EventID, UserID) pair is
// unique at the database level; toggling is a single conditional write.
type Like struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a user's rating and optional comment for an event. One review per
// (EventID, UserID); re-submitting updates the existing row in place.
type Review struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	UserID       string    `json:"user_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
