package handler

import (
	"net/http"

	"github.com/heavenly-delusionz/companion-platform/internal/persona"
)

// PersonaHandler handles persona listing.
type PersonaHandler struct{}

// NewPersonaHandler creates a new persona handler.
func NewPersonaHandler() *PersonaHandler {
	return &PersonaHandler{}
}

// List handles GET /api/v1/personas
func (h *PersonaHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"personas": persona.List(),
		"default":  persona.Default().Key,
	})
}
