package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON is the 200-OK shortcut; handlers that need a status use
// WriteJSON from errors.go.
func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

// methodMux dispatches one route by HTTP method so each handler stays a
// plain func without method checks of its own.
func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
