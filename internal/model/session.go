// Package model defines data structures for the companion platform.
package model

import (
	"time"
)

// Session represents a chat session owned by a user.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Persona      string    `json:"persona"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count,omitempty"`
	LastMessage  *Message  `json:"last_message,omitempty"`
	Deleted      bool      `json:"deleted,omitempty"`
}

// CreateSessionRequest is the request to create a new chat session.
type CreateSessionRequest struct {
	Name    string `json:"name,omitempty"`
	Persona string `json:"persona,omitempty"`
}

// UpdateSessionRequest is the request to rename a session or switch persona.
type UpdateSessionRequest struct {
	Name    string `json:"name,omitempty"`
	Persona string `json:"persona,omitempty"`
}

// ListSessionsResponse is the response for listing a user's sessions.
type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
	HasMore  bool      `json:"has_more"`
}
