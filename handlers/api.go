package handlers

import (
	"net/http"

	"github.com/zambiatennis/ztaweb/pkg"
	"github.com/zambiatennis/ztaweb/services"
)

// APIHandler serves the JSON endpoints.
type APIHandler struct {
	content services.ContentService
}

// NewAPIHandler is the constructor.
func NewAPIHandler(content services.ContentService) *APIHandler {
	return &APIHandler{content: content}
}

// Events godoc
// GET /api/events
// The in-memory events list as a bare JSON array, exactly as loaded at
// startup — no filtering, no pagination, no envelope.
func (h *APIHandler) Events(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, h.content.Events())
}

// Health godoc
// GET /api/health
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "ztaweb",
	})
}
