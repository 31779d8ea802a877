package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/heavenly-delusionz/companion-platform/internal/middleware"
	"github.com/heavenly-delusionz/companion-platform/internal/model"
	"github.com/heavenly-delusionz/companion-platform/internal/service"
	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
	"github.com/heavenly-delusionz/companion-platform/pkg/metrics"
)

// StreamHandler handles SSE streaming endpoints.
type StreamHandler struct {
	messageService *service.MessageService
	sessionService *service.SessionService
	logger         *logger.Logger
}

// NewStreamHandler creates a new stream handler.
func NewStreamHandler(
	msgSvc *service.MessageService,
	sessSvc *service.SessionService,
	log *logger.Logger,
) *StreamHandler {
	return &StreamHandler{
		messageService: msgSvc,
		sessionService: sessSvc,
		logger:         log,
	}
}

// ReplayCompleteEvent represents the completion of message replay.
type ReplayCompleteEvent struct {
	LastSequence uint64 `json:"last_sequence"`
	MessageCount int    `json:"message_count"`
}

// Stream handles GET /api/v1/sessions/:id/stream
// Supports ?after_sequence=N for resuming from a specific point
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Verify session exists and belongs to the user
	if _, err := h.sessionService.Get(ctx, userID, sessionID); err != nil {
		writeError(w, r, http.StatusNotFound, "session not found")
		return
	}

	// Parse after_sequence query param for replay
	var afterSequence uint64
	if seqStr := r.URL.Query().Get("after_sequence"); seqStr != "" {
		seq, err := strconv.ParseUint(seqStr, 10, 64)
		if err == nil {
			afterSequence = seq
		}
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, http.StatusInternalServerError, "streaming not supported")
		return
	}

	// Track active connection
	metrics.IncrementSSEConnections()
	defer metrics.DecrementSSEConnections()

	done := ctx.Done()

	// Send initial connection event
	sendSSEEvent(w, flusher, "connected", map[string]string{
		"session_id": sessionID,
	})

	// Replay missed messages if after_sequence is provided or replay all if 0
	var lastSequence uint64
	var totalReplayed int

	for {
		// Fetch messages in batches
		resp, err := h.messageService.GetMessages(ctx, userID, sessionID, afterSequence, 50)
		if err != nil {
			h.logger.Error("failed to replay messages",
				zap.Error(err),
				zap.String("session_id", sessionID))
			sendSSEEvent(w, flusher, "error", &model.ErrorEvent{
				Code:    "replay_error",
				Message: "Failed to replay messages",
			})
			break
		}

		// Send each message as an SSE event
		for _, msg := range resp.Messages {
			select {
			case <-done:
				return
			default:
			}

			sendSSEEvent(w, flusher, "message", msg)
			lastSequence = msg.Sequence
			totalReplayed++
		}

		// Update cursor for next batch
		if resp.HasMore {
			afterSequence = lastSequence
		} else {
			break
		}
	}

	// Send replay complete event
	sendSSEEvent(w, flusher, "replay_complete", &ReplayCompleteEvent{
		LastSequence: lastSequence,
		MessageCount: totalReplayed,
	})

	h.logger.Info("message replay complete",
		zap.String("session_id", sessionID),
		zap.Int("messages_replayed", totalReplayed),
		zap.Uint64("last_sequence", lastSequence),
	)

	// Start heartbeat ticker for keeping connection alive
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	// Keep connection open for live updates
	for {
		select {
		case <-done:
			// Client disconnected
			h.logger.Info("SSE client disconnected", zap.String("session_id", sessionID))
			return

		case <-heartbeat.C:
			// Send heartbeat to keep connection alive
			sendSSEEvent(w, flusher, "heartbeat", &model.HeartbeatEvent{
				Timestamp: time.Now(),
			})
		}
	}
}

// StreamWithMessage handles POST /api/v1/sessions/:id/stream
// This endpoint accepts a message and streams the response
func (h *StreamHandler) StreamWithMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Verify session exists and belongs to the user
	if _, err := h.sessionService.Get(ctx, userID, sessionID); err != nil {
		writeError(w, r, http.StatusNotFound, "session not found")
		return
	}

	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateMessageContent(req.Content); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidatePersona(req.Persona); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, http.StatusInternalServerError, "streaming not supported")
		return
	}

	// Track active connection
	metrics.IncrementSSEConnections()
	defer metrics.DecrementSSEConnections()

	// Send user message and stream response
	userMsg, assistantMsg, err := h.messageService.SendWithStream(
		ctx,
		userID,
		sessionID,
		&req,
		func(token string, index int) error {
			// Check if client disconnected
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			// Send token event
			return sendSSEEvent(w, flusher, "token", &model.TokenEvent{
				Token: token,
				Index: index,
			})
		},
	)

	if err != nil {
		// Send error event
		sendSSEEvent(w, flusher, "error", &model.ErrorEvent{
			Code:    "stream_error",
			Message: err.Error(),
		})
		return
	}

	// Send user message confirmation
	sendSSEEvent(w, flusher, "user_message", userMsg)

	// Send message complete event
	if assistantMsg != nil {
		sendSSEEvent(w, flusher, "message_complete", &model.MessageCompleteEvent{
			Message:  *assistantMsg,
			Sequence: assistantMsg.Sequence,
		})
	}

	// Send done event
	sendSSEEvent(w, flusher, "done", map[string]bool{"success": true})
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "event: %s\n", event)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
	flusher.Flush()

	return nil
}
