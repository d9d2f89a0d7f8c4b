// Package types contains common read shapes used across the application
package types

// MemberView captures one person's record within a group as exposed to
// callers.
type MemberView struct {
	PersonName string             `json:"person_name"`
	Grades     map[string]float64 `json:"grades,omitempty"`
}

// GroupView is the display shape for a group.
type GroupView struct {
	Name    string       `json:"name"`
	Tags    []string     `json:"tags,omitempty"`
	Members []MemberView `json:"members,omitempty"`
}

// StandingsEntry is one row of a group's assignment standings.
type StandingsEntry struct {
	Rank       int     `json:"rank"`
	PersonName string  `json:"person_name"`
	Score      float64 `json:"score"`
}
