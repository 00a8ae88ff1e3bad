package respond

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Envelope is the standard API response wrapper used across handlers.
type Envelope struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON writes a success or informational response using the common envelope.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Code: status, Message: message, Data: data})
}

// Error writes an error response with the shared envelope structure.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Code: status, Message: message})
}

// Invalid writes a 400 carrying the per-field validation errors so a
// client can surface every failing field at once.
func Invalid(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusBadRequest, Envelope{
		Code:    http.StatusBadRequest,
		Message: "validation failed",
		Errors:  errs,
	})
}

func write(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("respond: encode payload failed")
	}
}
