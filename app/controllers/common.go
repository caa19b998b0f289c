package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogapi/app/repositories"
	"blogapi/app/services"
)

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func sendMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func sendNotFound(w http.ResponseWriter, resource string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"error": resource + " not found"})
}

// handleServiceError converts any failure escaping a service call into the
// uniform error payloads: missing fields and duplicate emails are 400s, an
// unresolved id is a 404, everything else (including storage validation and
// malformed ids) falls through to a 500.
func handleServiceError(w http.ResponseWriter, err error, resource string) {
	var missing *services.MissingFieldError
	switch {
	case errors.As(err, &missing):
		sendMessage(w, http.StatusBadRequest, missing.Error())
	case errors.Is(err, services.ErrUserExists):
		sendMessage(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, repositories.ErrNotFound):
		sendNotFound(w, resource)
	default:
		sendMessage(w, http.StatusInternalServerError, err.Error())
	}
}
