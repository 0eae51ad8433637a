package handler

import "net/http"

// HandleState returns the current session state snapshot.
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// HandleFetchGrades starts the grades request and returns the state
// right after the transition. The terminal state arrives over the
// websocket (or a later GET /api/state).
func (h *Handler) HandleFetchGrades(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.session.StartGrades())
}

// HandleAnalyzeTeam starts the analysis request, symmetrically.
func (h *Handler) HandleAnalyzeTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.session.StartAnalysis())
}
