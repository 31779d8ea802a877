package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heavenly-delusionz/companion-platform/internal/middleware"
	"github.com/heavenly-delusionz/companion-platform/internal/model"
	"github.com/heavenly-delusionz/companion-platform/internal/service"
	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
)

// MessageHandler handles message endpoints.
type MessageHandler struct {
	messageService *service.MessageService
	sessionService *service.SessionService
	logger         *logger.Logger
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(
	msgSvc *service.MessageService,
	sessSvc *service.SessionService,
	log *logger.Logger,
) *MessageHandler {
	return &MessageHandler{
		messageService: msgSvc,
		sessionService: sessSvc,
		logger:         log,
	}
}

// List handles GET /api/v1/sessions/:id/messages
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
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

	// Parse query params
	afterSequence := uint64(0)
	limit := 50

	if seq := r.URL.Query().Get("after_sequence"); seq != "" {
		if parsed, err := strconv.ParseUint(seq, 10, 64); err == nil {
			afterSequence = parsed
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	resp, err := h.messageService.GetMessages(ctx, userID, sessionID, afterSequence, limit)
	if err != nil {
		h.logger.Error("failed to get messages")
		writeError(w, r, http.StatusInternalServerError, "failed to get messages")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Send handles POST /api/v1/sessions/:id/messages
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
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

	if req.Stream {
		// For streaming, return 202 Accepted with stream URL; the client
		// posts the message to the stream endpoint instead.
		w.Header().Set("X-Stream-URL", "/api/v1/sessions/"+sessionID+"/stream")
		w.WriteHeader(http.StatusAccepted)
		return
	}

	resp, err := h.messageService.SendSync(ctx, userID, sessionID, &req)
	if err != nil {
		h.logger.Error("failed to send message")
		writeError(w, r, http.StatusInternalServerError, "failed to send message")
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
