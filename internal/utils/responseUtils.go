package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// MessageResponse is the body of every error and of mutation responses without an entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON writes payload as JSON with the given status code.
func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// SendJSONError writes {"message": message} with the given status code.
func SendJSONError(w http.ResponseWriter, message string, status int) {
	RespondWithJSON(w, status, MessageResponse{Message: message})
}

// RespondWithServerError exposes the underlying error text with a 500.
func RespondWithServerError(w http.ResponseWriter, err error) {
	SendJSONError(w, "Error: "+err.Error(), http.StatusInternalServerError)
}
