// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/okian/roster/internal/domain/command"
)

// PersonsHandler handles person requests.
type PersonsHandler struct {
	deps Dependencies
}

// NewPersonsHandler creates a new persons handler.
func NewPersonsHandler(deps Dependencies) *PersonsHandler {
	return &PersonsHandler{deps: deps}
}

// personRequest mirrors the request shape for POST /persons.
type personRequest struct {
	Name string `json:"name"`
}

// HandlePersons handles GET /persons and POST /persons requests.
func (h *PersonsHandler) HandlePersons(w http.ResponseWriter, r *http.Request) {
	const op = "api.persons"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Persons(r.Context()))
	case http.MethodPost:
		var req personRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		cmd, err := command.NewAddPerson(req.Name)
		executeAndRender(w, r, h.deps, cmd, err)
	default:
		http.NotFound(w, r)
	}
}

// HandlePerson handles DELETE /persons/{name} requests.
func (h *PersonsHandler) HandlePerson(w http.ResponseWriter, r *http.Request) {
	const op = "api.person"
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/persons/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	cmd, err := command.NewDeletePerson(name)
	executeAndRender(w, r, h.deps, cmd, err)
}
