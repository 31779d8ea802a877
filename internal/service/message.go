package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heavenly-delusionz/companion-platform/internal/analytics"
	"github.com/heavenly-delusionz/companion-platform/internal/llm"
	"github.com/heavenly-delusionz/companion-platform/internal/model"
	natsclient "github.com/heavenly-delusionz/companion-platform/internal/nats"
	"github.com/heavenly-delusionz/companion-platform/internal/persona"
	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
	"github.com/heavenly-delusionz/companion-platform/pkg/metrics"
)

// snapshotLimit caps how many messages are materialized from JetStream for
// a single analysis or history fetch.
const snapshotLimit = 1000

// MessageService handles message operations.
type MessageService struct {
	streamManager  *natsclient.StreamManager
	sessionService *SessionService
	llmClient      llm.Client
	defaultModel   string
	logger         *logger.Logger
}

// NewMessageService creates a new message service.
func NewMessageService(
	streamManager *natsclient.StreamManager,
	sessionService *SessionService,
	llmClient llm.Client,
	defaultModel string,
	log *logger.Logger,
) *MessageService {
	return &MessageService{
		streamManager:  streamManager,
		sessionService: sessionService,
		llmClient:      llmClient,
		defaultModel:   defaultModel,
		logger:         log,
	}
}

// TokenCallback is called for each token during streaming.
type TokenCallback func(token string, index int) error

// resolvePersona picks the persona for a completion: an explicit request
// override wins, then the session's persona, then the default.
func (s *MessageService) resolvePersona(sess *model.Session, override string) persona.Persona {
	if override != "" {
		if p, ok := persona.Get(override); ok {
			return p
		}
	}
	if p, ok := persona.Get(sess.Persona); ok {
		return p
	}
	return persona.Default()
}

// Send publishes a user message without generating a response.
func (s *MessageService) Send(ctx context.Context, userID, sessionID string, req *model.SendMessageRequest) (*model.Message, uint64, error) {
	sess, err := s.sessionService.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()

	userMsg := &model.Message{
		ID:        uuid.Must(uuid.NewV7()).String(),
		SessionID: sessionID,
		UserID:    userID,
		Role:      model.RoleUser,
		Content:   req.Content,
		CreatedAt: now,
	}

	seq, err := s.streamManager.PublishMessage(ctx, userMsg)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to publish user message: %w", err)
	}
	userMsg.Sequence = seq

	s.sessionService.UpdateLastMessage(ctx, userID, sessionID, userMsg)

	metrics.MessagesTotal.WithLabelValues(string(model.RoleUser), sess.Persona).Inc()

	return userMsg, seq, nil
}

// SendWithStream sends a user message and streams the AI response. The
// session persona's system prompt is injected into the completion.
func (s *MessageService) SendWithStream(
	ctx context.Context,
	userID, sessionID string,
	req *model.SendMessageRequest,
	onToken TokenCallback,
) (*model.Message, *model.Message, error) {
	sess, err := s.sessionService.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}

	// Send user message
	userMsg, _, err := s.Send(ctx, userID, sessionID, req)
	if err != nil {
		return nil, nil, err
	}

	// Get session history for context
	messages, _, _, err := s.streamManager.GetMessages(ctx, userID, sessionID, 0, 50)
	if err != nil {
		return userMsg, nil, fmt.Errorf("failed to get message history: %w", err)
	}

	chatMessages := make([]llm.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == model.RoleSystem {
			continue
		}
		chatMessages = append(chatMessages, llm.ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	p := s.resolvePersona(sess, req.Persona)

	streamStart := time.Now()
	modelName := req.Model
	if modelName == "" {
		modelName = s.defaultModel
	}

	resp, err := s.llmClient.CompleteStream(ctx, &llm.CompletionRequest{
		Model:     modelName,
		System:    p.SystemPrompt,
		Messages:  chatMessages,
		MaxTokens: 4096,
		Stream:    true,
	}, func(token string, index int) error {
		return onToken(token, index)
	})
	if err != nil {
		s.streamManager.PublishEvent(ctx, &model.SessionEvent{
			ID:        uuid.Must(uuid.NewV7()).String(),
			SessionID: sessionID,
			UserID:    userID,
			Type:      model.EventTypeError,
			Reason:    err.Error(),
			CreatedAt: time.Now(),
		})
		return userMsg, nil, fmt.Errorf("LLM stream failed: %w", err)
	}

	streamEnd := time.Now()

	assistantMsg := &model.Message{
		ID:            uuid.Must(uuid.NewV7()).String(),
		SessionID:     sessionID,
		UserID:        userID,
		Role:          model.RoleAssistant,
		Content:       resp.Content,
		Persona:       p.Key,
		Model:         &resp.Model,
		TokensIn:      &resp.TokensIn,
		TokensOut:     &resp.TokensOut,
		LatencyMs:     &resp.LatencyMs,
		StopReason:    &resp.StopReason,
		CreatedAt:     time.Now(),
		StreamStarted: &streamStart,
		StreamEnded:   &streamEnd,
	}

	seq, err := s.streamManager.PublishMessage(ctx, assistantMsg)
	if err != nil {
		return userMsg, nil, fmt.Errorf("failed to publish assistant message: %w", err)
	}
	assistantMsg.Sequence = seq

	s.sessionService.UpdateLastMessage(ctx, userID, sessionID, assistantMsg)

	metrics.MessagesTotal.WithLabelValues(string(model.RoleAssistant), p.Key).Inc()
	metrics.RecordCompletion(resp.Model, "success", float64(resp.LatencyMs)/1000.0, resp.TokensIn, resp.TokensOut)

	return userMsg, assistantMsg, nil
}

// SendSync sends a user message and returns the full AI response without
// streaming.
func (s *MessageService) SendSync(ctx context.Context, userID, sessionID string, req *model.SendMessageRequest) (*model.SendMessageResponse, error) {
	userMsg, assistantMsg, err := s.SendWithStream(ctx, userID, sessionID, req, func(string, int) error { return nil })
	if err != nil {
		return nil, err
	}
	return &model.SendMessageResponse{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		Sequence:         assistantMsg.Sequence,
	}, nil
}

// GetMessages retrieves messages for a session.
func (s *MessageService) GetMessages(ctx context.Context, userID, sessionID string, afterSequence uint64, limit int) (*model.ListMessagesResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	messages, lastSeq, hasMore, err := s.streamManager.GetMessages(ctx, userID, sessionID, afterSequence, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return &model.ListMessagesResponse{
		Messages:     messages,
		HasMore:      hasMore,
		LastSequence: lastSeq,
	}, nil
}

// Snapshot materializes a session's history from JetStream as analysis
// turns, in stream order. System messages are excluded.
func (s *MessageService) Snapshot(ctx context.Context, userID, sessionID string) ([]analytics.Turn, error) {
	messages, _, _, err := s.streamManager.GetMessages(ctx, userID, sessionID, 0, snapshotLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot session: %w", err)
	}

	turns := make([]analytics.Turn, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case model.RoleUser:
			turns = append(turns, analytics.Turn{Role: analytics.RoleUser, Text: msg.Content})
		case model.RoleAssistant:
			turns = append(turns, analytics.Turn{Role: analytics.RoleAssistant, Text: msg.Content})
		}
	}

	return turns, nil
}
