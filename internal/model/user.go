package model

import "time"

// Role controls access to the admin moderation surface.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered account. PasswordHash is never serialised.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor identifies the authenticated caller of a mutating operation.
// Every service method that writes takes an explicit Actor rather than
// consulting global session state.
type Actor struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the actor may use the moderation surface.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
