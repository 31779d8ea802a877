package model

import (
	"time"
)

// EventType represents the type of session event.
type EventType string

const (
	EventTypeError      EventType = "error"
	EventTypeCancel     EventType = "cancel"
	EventTypeRateLimit  EventType = "rate_limit"
	EventTypeTimeout    EventType = "timeout"
	EventTypeAssessment EventType = "assessment"
)

// SessionEvent represents an event in a chat session, such as an LLM
// failure or a completed assessment.
type SessionEvent struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id"`
	Type      EventType      `json:"type"`
	Reason    string         `json:"reason,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Sequence  uint64         `json:"sequence,omitempty"`
}
