package server

import (
	"net/http"

	"fantassist/internal/gateway/handler"
	"fantassist/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/roster", h.HandleRoster)
	mux.HandleFunc("/api/roster/players", h.HandleAddPlayer)
	mux.HandleFunc("/api/roster/players/", h.HandleRemovePlayer)
	mux.HandleFunc("/api/actions/grades", h.HandleFetchGrades)
	mux.HandleFunc("/api/actions/analysis", h.HandleAnalyzeTeam)
	mux.HandleFunc("/api/state", h.HandleState)
	mux.HandleFunc("/api/state/ws", h.HandleStateWS)

	return middleware.CORS(mux)
}
