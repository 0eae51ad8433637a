package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"fantassist/internal/roster"
	"fantassist/internal/session"
)

// Handler serves the JSON API and the state websocket. It holds the
// roster store and the session as its only dependencies.
type Handler struct {
	roster  *roster.Store
	session *session.Session
}

func New(store *roster.Store, sess *session.Session) *Handler {
	return &Handler{roster: store, session: sess}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
