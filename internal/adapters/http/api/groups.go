// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/roster/internal/domain/command"
	"github.com/okian/roster/internal/domain/model"
)

// GroupsHandler handles group and membership requests.
type GroupsHandler struct {
	deps Dependencies
}

// NewGroupsHandler creates a new groups handler.
func NewGroupsHandler(deps Dependencies) *GroupsHandler {
	return &GroupsHandler{deps: deps}
}

// groupRequest mirrors the request shape for POST /groups and
// PUT /groups/{index}.
type groupRequest struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// memberRequest mirrors the request shape for POST /groups/{name}/members.
type memberRequest struct {
	PersonName string `json:"person_name"`
}

// HandleGroups handles GET /groups and POST /groups requests.
func (h *GroupsHandler) HandleGroups(w http.ResponseWriter, r *http.Request) {
	const op = "api.groups"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Groups(r.Context()))
	case http.MethodPost:
		var req groupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		tags, err := parseTags(req.Tags)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		cmd, err := command.NewAddGroup(req.Name, tags)
		executeAndRender(w, r, h.deps, cmd, err)
	default:
		http.NotFound(w, r)
	}
}

// HandleGroup routes requests under /groups/:
//
//	PUT    /groups/{index}                  edit name and tags
//	DELETE /groups/{index}                  delete group
//	POST   /groups/{name}/members           add person to group
//	DELETE /groups/{name}/members/{person}  remove person from group
func (h *GroupsHandler) HandleGroup(w http.ResponseWriter, r *http.Request) {
	const op = "api.group"
	rest := strings.TrimPrefix(r.URL.Path, "/groups/")
	segments := strings.Split(rest, "/")

	switch {
	case len(segments) == 1 && segments[0] != "":
		h.handleIndexed(w, r, op, segments[0])
	case len(segments) == 2 && segments[1] == "members" && r.Method == http.MethodPost:
		h.handleAddMember(w, r, op, segments[0])
	case len(segments) == 3 && segments[1] == "members" && r.Method == http.MethodDelete:
		cmd, err := command.NewRemoveFromGroup(segments[2], segments[0])
		executeAndRender(w, r, h.deps, cmd, err)
	default:
		http.NotFound(w, r)
	}
}

// handleIndexed covers the 1-based display-index addressing of edit and
// delete.
func (h *GroupsHandler) handleIndexed(w http.ResponseWriter, r *http.Request, op, raw string) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req groupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		tags, err := parseTags(req.Tags)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		cmd, err := command.NewEditGroup(index, req.Name, tags)
		executeAndRender(w, r, h.deps, cmd, err)
	case http.MethodDelete:
		cmd, err := command.NewDeleteGroup(index)
		executeAndRender(w, r, h.deps, cmd, err)
	default:
		http.NotFound(w, r)
	}
}

func (h *GroupsHandler) handleAddMember(w http.ResponseWriter, r *http.Request, op, groupName string) {
	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	cmd, err := command.NewAddToGroup(req.PersonName, groupName)
	executeAndRender(w, r, h.deps, cmd, err)
}

func parseTags(labels []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(labels))
	for _, label := range labels {
		t, err := model.NewTag(label)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}
