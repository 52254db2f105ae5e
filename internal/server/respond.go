package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/princejain-2004/RESUME-EXPERT/internal/schemas"
)

// maxJSONBody caps request bodies that are decoded as JSON.
const maxJSONBody = 2 << 20

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorMessage writes an error JSON response
func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeError maps err to a status and writes it. Internal failures are
// logged and reported without detail.
func writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	switch status {
	case http.StatusInternalServerError:
		log.Printf("[server] internal error: %v", err)
		writeErrorMessage(w, status, "internal server error")
		return
	case http.StatusBadGateway:
		log.Printf("[export] %v", err)
		writeErrorMessage(w, status, "failed to render resume")
		return
	}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		writeJSON(w, status, map[string]any{
			"error":   "resume does not match the expected shape",
			"details": schemaErr.Errors,
		})
		return
	}
	writeErrorMessage(w, status, err.Error())
}

// decodeJSON decodes a bounded request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}
