package middleware

import (
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heavenly-delusionz/companion-platform/internal/persona"
)

// ValidateMessageContent validates message content.
func ValidateMessageContent(content string) error {
	if len(content) == 0 {
		return errors.New("content cannot be empty")
	}
	if len(content) > 100000 { // ~100KB limit
		return errors.New("content exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("content must be valid UTF-8")
	}
	return nil
}

// ValidateSessionID validates a session ID.
func ValidateSessionID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid session ID format")
	}
	return nil
}

// ValidateMessageID validates a message ID.
func ValidateMessageID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid message ID format")
	}
	return nil
}

// ValidateSessionName validates a session name.
func ValidateSessionName(name string) error {
	if len(name) > 256 {
		return errors.New("session name exceeds maximum length")
	}
	if !utf8.ValidString(name) {
		return errors.New("session name must be valid UTF-8")
	}
	return nil
}

// ValidatePersona validates a persona key. Empty selects the default.
func ValidatePersona(key string) error {
	if key == "" {
		return nil
	}
	if !persona.Valid(key) {
		return errors.New("unknown persona")
	}
	return nil
}
