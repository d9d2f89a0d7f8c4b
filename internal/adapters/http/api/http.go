// Package api declares HTTP contracts and route registration helpers.
//
// The adapter plays the parser's role for the command core: each handler
// turns a validated request into a command object, hands it to the service
// for execution, and renders the Result or the typed command error.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/roster/internal/adapters/repository"
	"github.com/okian/roster/internal/domain/command"
	"github.com/okian/roster/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Execute applies one command and returns its user-facing outcome.
	Execute(ctx context.Context, cmd command.Command) (command.Result, error)

	// Read operations expose address book data.
	Persons(ctx context.Context) []string
	Groups(ctx context.Context) []types.GroupView
	Standings(ctx context.Context, groupName, assignment string, limit int) ([]types.StandingsEntry, error)
}

// GroupView mirrors the read shape returned by group queries.
type GroupView = types.GroupView

// StandingsEntry mirrors the read shape returned by standings queries.
type StandingsEntry = types.StandingsEntry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	personsHandler   *PersonsHandler
	groupsHandler    *GroupsHandler
	gradesHandler    *GradesHandler
	standingsHandler *StandingsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		personsHandler:   NewPersonsHandler(deps),
		groupsHandler:    NewGroupsHandler(deps),
		gradesHandler:    NewGradesHandler(deps),
		standingsHandler: NewStandingsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/persons", MetricsMiddleware(s.personsHandler.HandlePersons, "persons"))
	mux.HandleFunc("/persons/", MetricsMiddleware(s.personsHandler.HandlePerson, "person"))
	mux.HandleFunc("/groups", MetricsMiddleware(s.groupsHandler.HandleGroups, "groups"))
	mux.HandleFunc("/groups/", MetricsMiddleware(s.groupsHandler.HandleGroup, "group"))
	mux.HandleFunc("/grades", MetricsMiddleware(s.gradesHandler.HandlePostGrade, "grades"))
	mux.HandleFunc("/standings/", MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings"))
}

// feedbackResponse carries a command's user-facing message.
type feedbackResponse struct {
	Feedback string `json:"feedback"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeCommandError maps command error kinds to HTTP statuses; anything that
// is not a command error is a fault in the store and surfaces as 500.
func writeCommandError(w http.ResponseWriter, err error) {
	kind := command.KindOf(err)
	switch kind {
	case command.KindInvalidArgument:
		writeError(w, http.StatusBadRequest, kind.String(), err)
	case command.KindNotFound, command.KindNotAMember, command.KindInvalidIndex:
		writeError(w, http.StatusNotFound, kind.String(), err)
	case command.KindDuplicate:
		writeError(w, http.StatusConflict, kind.String(), err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// executeAndRender runs cmd through deps and renders the outcome.
func executeAndRender(w http.ResponseWriter, r *http.Request, deps Dependencies, cmd command.Command, err error) {
	if err != nil {
		writeCommandError(w, err)
		return
	}
	res, err := deps.Execute(r.Context(), cmd)
	if err != nil {
		writeCommandError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feedbackResponse{Feedback: res.Feedback()})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repository.ErrPersonNotFound) || errors.Is(err, repository.ErrGroupNotFound) {
		return true
	}
	var cerr *command.Error
	if errors.As(err, &cerr) {
		return cerr.Kind() == command.KindNotFound
	}
	return false
}
