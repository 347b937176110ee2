package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Dwieght/deer-sub000/internal/repository"
	"github.com/Dwieght/deer-sub000/internal/service"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps errors crossing the handler boundary to HTTP
// statuses. Store detail is logged, not surfaced.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, "invalid email or password", http.StatusUnauthorized)
	default:
		log.Printf("internal error: %v", err)
		WriteError(w, "something went wrong, please try again", http.StatusInternalServerError)
	}
}
