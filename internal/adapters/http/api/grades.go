// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/roster/internal/domain/command"
)

// GradesHandler handles grading requests.
type GradesHandler struct {
	deps Dependencies
}

// NewGradesHandler creates a new grades handler.
func NewGradesHandler(deps Dependencies) *GradesHandler {
	return &GradesHandler{deps: deps}
}

// gradeRequest mirrors the request shape for POST /grades.
type gradeRequest struct {
	PersonName     string  `json:"person_name"`
	GroupName      string  `json:"group_name"`
	AssignmentName string  `json:"assignment_name"`
	Score          float64 `json:"score"`
}

// HandlePostGrade handles POST /grades requests.
func (h *GradesHandler) HandlePostGrade(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_grade"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	cmd, err := command.NewGradeAssignment(req.PersonName, req.GroupName, req.AssignmentName, req.Score)
	executeAndRender(w, r, h.deps, cmd, err)
}
