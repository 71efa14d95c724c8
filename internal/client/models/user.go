// Package models defines the client-side view of PackChann wire entities
// and the request payloads sent to the server. JSON field names follow the
// server exactly.
package models

import "time"

// Role of an authenticated user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the authenticated identity as returned by the server.
type User struct {
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name"`
	StudentID    string    `json:"student_id"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	RegisterTime time.Time `json:"register_time,omitzero"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// AuthResult is the session-establishing payload of /login and /register.
type AuthResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
