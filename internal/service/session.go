// Package service provides business logic for the companion platform.
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/heavenly-delusionz/companion-platform/internal/model"
	"github.com/heavenly-delusionz/companion-platform/internal/persona"
	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
	"github.com/heavenly-delusionz/companion-platform/pkg/metrics"
)

// SessionService handles chat session operations.
type SessionService struct {
	logger *logger.Logger

	// In-memory storage for session records (would be replaced with a
	// database in production). Message history itself lives in JetStream.
	sessions map[string]*model.Session
	mu       sync.RWMutex
}

// NewSessionService creates a new session service.
func NewSessionService(log *logger.Logger) *SessionService {
	return &SessionService{
		logger:   log,
		sessions: make(map[string]*model.Session),
	}
}

// defaultName names an unnamed session after its creation time.
func defaultName(t time.Time) string {
	return t.Format("2006-01-02_15-04-05") + " Chat"
}

// Create creates a new chat session.
func (s *SessionService) Create(ctx context.Context, userID string, req *model.CreateSessionRequest) (*model.Session, error) {
	now := time.Now()

	name := req.Name
	if name == "" {
		name = defaultName(now)
	}

	p := req.Persona
	if p == "" {
		p = persona.Default().Key
	}
	if !persona.Valid(p) {
		return nil, fmt.Errorf("unknown persona %q", p)
	}

	sess := &model.Session{
		ID:        uuid.Must(uuid.NewV7()).String(),
		UserID:    userID,
		Name:      name,
		Persona:   p,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	metrics.SessionsTotal.Inc()
	s.logger.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("user_id", userID),
		zap.String("persona", p),
	)

	return sess, nil
}

// Get retrieves a session by ID, scoped to its owner.
func (s *SessionService) Get(ctx context.Context, userID, sessionID string) (*model.Session, error) {
	s.mu.RLock()
	sess, exists := s.sessions[sessionID]
	s.mu.RUnlock()

	if !exists || sess.UserID != userID || sess.Deleted {
		return nil, fmt.Errorf("session not found")
	}

	return sess, nil
}

// List retrieves sessions for a user, newest first.
func (s *SessionService) List(ctx context.Context, userID string, limit, offset int) (*model.ListSessionsResponse, error) {
	s.mu.RLock()
	var sessions []model.Session
	for _, sess := range s.sessions {
		if sess.UserID == userID && !sess.Deleted {
			sessions = append(sessions, *sess)
		}
	}
	s.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})

	// Simple pagination
	total := len(sessions)
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &model.ListSessionsResponse{
		Sessions: sessions[start:end],
		Total:    total,
		HasMore:  end < total,
	}, nil
}

// Update renames a session or switches its persona.
func (s *SessionService) Update(ctx context.Context, userID, sessionID string, req *model.UpdateSessionRequest) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists || sess.UserID != userID || sess.Deleted {
		return nil, fmt.Errorf("session not found")
	}

	if req.Name != "" {
		sess.Name = req.Name
	}
	if req.Persona != "" {
		if !persona.Valid(req.Persona) {
			return nil, fmt.Errorf("unknown persona %q", req.Persona)
		}
		sess.Persona = req.Persona
	}
	sess.UpdatedAt = time.Now()

	return sess, nil
}

// Delete soft deletes a session. The JetStream history is retained.
func (s *SessionService) Delete(ctx context.Context, userID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists || sess.UserID != userID {
		return fmt.Errorf("session not found")
	}

	sess.Deleted = true
	sess.UpdatedAt = time.Now()

	return nil
}

// UpdateLastMessage updates the last message snapshot for a session.
func (s *SessionService) UpdateLastMessage(ctx context.Context, userID, sessionID string, msg *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists || sess.UserID != userID {
		return fmt.Errorf("session not found")
	}

	sess.LastMessage = msg
	sess.MessageCount++
	sess.UpdatedAt = time.Now()

	return nil
}
