package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heavenly-delusionz/companion-platform/internal/middleware"
)

func TestWriteErrorIncludesCorrelationID(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.CorrelationIDKey, "corr-123")
	r := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	writeError(w, r, http.StatusNotFound, "session not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "session not found", body.Error)
	assert.Equal(t, "corr-123", body.CorrelationID)
}

func TestWriteErrorWithoutCorrelationID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
	w := httptest.NewRecorder()

	writeError(w, r, http.StatusBadRequest, "invalid request body")

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "invalid request body", raw["error"])
	assert.NotContains(t, raw, "correlation_id")
}
