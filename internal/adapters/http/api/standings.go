// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"
)

// StandingsHandler handles ranked-score queries.
type StandingsHandler struct {
	deps Dependencies
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps Dependencies) *StandingsHandler {
	return &StandingsHandler{deps: deps}
}

// standingsResponse is the response shape for GET /standings/{group}/{assignment}.
type standingsResponse struct {
	GroupName  string           `json:"group_name"`
	Assignment string           `json:"assignment"`
	Entries    []StandingsEntry `json:"entries"`
}

// HandleGetStandings handles GET /standings/{group}/{assignment} requests.
// An optional limit query parameter caps the number of returned entries.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_standings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/standings/")
	segments := strings.Split(rest, "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	groupName, assignment := segments[0], segments[1]

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}

	entries, err := h.deps.Standings(r.Context(), groupName, assignment, limit)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if entries == nil {
		entries = []StandingsEntry{}
	}
	writeJSON(w, http.StatusOK, standingsResponse{
		GroupName:  groupName,
		Assignment: assignment,
		Entries:    entries,
	})
}
