package respond

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"error": message})
}

// Empty writes a status line with no body.
func Empty(w http.ResponseWriter, r *http.Request, code int) {
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(code)
}
