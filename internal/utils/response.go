package utils

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	WriteJSON(w, code, map[string]string{"error": message})
}

// WriteJSONErrorDetail adds a diagnostic "details" field next to "error".
func WriteJSONErrorDetail(w http.ResponseWriter, message, details string, code int) {
	WriteJSON(w, code, map[string]string{"error": message, "details": details})
}
