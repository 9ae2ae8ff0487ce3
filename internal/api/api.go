// Package api exposes the KalaSetu REST surface consumed by the WASM client.
// Errors are returned as {"message": "..."} and surfaced verbatim in the UI.
package api

import (
	"encoding/json"
	"net/http"
)

func RegisterRoutes(mux *http.ServeMux) {
	registerAuthRoutes(mux)
	registerProfileRoutes(mux)
	registerBusinessRoutes(mux)
	registerMarketplaceRoutes(mux)
	registerForumRoutes(mux)
	registerCommunityRoutes(mux)
	registerChatRoutes(mux)
	registerMentorshipRoutes(mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
