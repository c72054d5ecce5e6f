package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// applyCORSFallback guarantees CORS headers on responses the CORS layer
// did not decorate (requests without an Origin header, bare OPTIONS).
func applyCORSFallback(w http.ResponseWriter, r *http.Request) {
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		return
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = "*"
	}
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Add("Vary", "Origin")
}

// writeJSON writes data pretty-printed with the response contract's
// content type and CORS headers.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	applyCORSFallback(w, r)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to encode response"}`))
		return
	}
	w.WriteHeader(status)
	w.Write(body)
}

// writeError writes a single-key JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, map[string]string{"error": message})
}
