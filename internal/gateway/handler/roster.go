package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"fantassist/internal/roster"
)

type rosterResponse struct {
	Players []roster.Player `json:"players"`
}

// HandleRoster lists the roster in insertion order.
func (h *Handler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, rosterResponse{Players: h.roster.Players()})
}

// HandleAddPlayer adds a player. A blank name is a silent no-op (the
// unchanged roster comes back); an unknown role code is a client error.
func (h *Handler) HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	role, ok := roster.ParseRole(in.Role)
	if !ok {
		writeError(w, http.StatusBadRequest, "role must be one of P, D, C, A")
		return
	}

	_, added := h.roster.Add(in.Name, role)
	writeJSON(w, http.StatusOK, struct {
		Added bool `json:"added"`
		rosterResponse
	}{added, rosterResponse{Players: h.roster.Players()}})
}

// HandleRemovePlayer removes the player whose id follows the route
// prefix. Removing an unknown id is a no-op.
func (h *Handler) HandleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/roster/players/")
	id = strings.TrimSpace(strings.Trim(id, "/"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "player id is required")
		return
	}

	removed := h.roster.Remove(id)
	writeJSON(w, http.StatusOK, struct {
		Removed bool `json:"removed"`
		rosterResponse
	}{removed, rosterResponse{Players: h.roster.Players()}})
}
