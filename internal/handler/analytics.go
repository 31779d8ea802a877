package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heavenly-delusionz/companion-platform/internal/middleware"
	"github.com/heavenly-delusionz/companion-platform/internal/service"
	"github.com/heavenly-delusionz/companion-platform/pkg/logger"
)

// AnalyticsHandler handles mental health assessment endpoints.
type AnalyticsHandler struct {
	service *service.AnalyticsService
	logger  *logger.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(svc *service.AnalyticsService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: svc,
		logger:  log,
	}
}

// AnalyzeSession handles GET /api/v1/sessions/:id/analytics
func (h *AnalyticsHandler) AnalyzeSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	sessionID := chi.URLParam(r, "id")

	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	assessment, err := h.service.AnalyzeSession(ctx, userID, sessionID)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// AnalyzeUser handles GET /api/v1/analytics
func (h *AnalyticsHandler) AnalyzeUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	assessment, err := h.service.AnalyzeUser(ctx, userID)
	if err != nil {
		h.logger.Error("failed to analyze user history")
		writeError(w, r, http.StatusInternalServerError, "failed to analyze history")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}
