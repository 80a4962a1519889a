// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorResponse is the JSON envelope for every failure. Message is the stable
// user-facing text; Detail carries secondary diagnostics and is omitted when
// empty. Raw backend errors only ever appear in Detail, never in Message.
type errorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// successResponse is the envelope for update/delete outcomes.
type successResponse struct {
	Success bool `json:"success"`
}

// messageResponse is the envelope for user operations that report a message.
type messageResponse struct {
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}

// respondWithJSON writes a JSON response with the given status code.
func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError classifies a pipeline failure and writes the mapped
// (status, message, detail) envelope.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status, message, detail := Classify(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	respondWithJSON(w, logger, status, errorResponse{Message: message, Detail: detail})
}
