package models

import "time"

// Session is a server-side session row. Cookies only carry the signed
// session id; identity is always resolved against this table.
type Session struct {
	ID        string    `json:"id"`
	StudentID *string   `json:"student_id,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
