package handler

import (
	"net/http"

	"studenttracker/internal/service"
)

type SessionHandler struct {
	importService *service.ImportService
}

func NewSessionHandler(importService *service.ImportService) *SessionHandler {
	return &SessionHandler{importService: importService}
}

// ListImports returns the history of import attempts, oldest first.
func (h *SessionHandler) ListImports(w http.ResponseWriter, r *http.Request) {
	sessions := h.importService.Sessions()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  sessions,
		"count": len(sessions),
	})
}
