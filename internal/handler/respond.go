package handler

// respond.go centralizes JSON responses and the mapping from the typed
// errors of the core packages to HTTP status codes. Handlers never leak
// internal error text for unexpected failures; typed errors are shown to
// the caller verbatim.

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"studenttracker/internal/codec"
	"studenttracker/internal/query"
	"studenttracker/internal/store"
	"studenttracker/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	var verr *validate.ValidationError
	var rerr *codec.RowError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
	case errors.Is(err, query.ErrNoQuery):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, query.ErrEmpty):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &rerr), errors.Is(err, codec.ErrBadHeader):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		log.Println("Internal error:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
