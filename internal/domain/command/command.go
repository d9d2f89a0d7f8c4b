// Package command contains the command-execution core: one command object per
// user intent, validated at construction, applied against the Model, and
// answering with a Result or a typed *Error.
package command

import (
	"context"

	"github.com/okian/roster/internal/domain/model"
)

// Model is the mutable in-memory store commands execute against. It is always
// passed into Execute by the caller; commands never reach for a global.
//
// The store is expected to preserve insertion order in its filtered views so
// index-addressed commands stay stable between a listing and the edit that
// follows it.
type Model interface {
	// Person resolves a person by exact, case-sensitive name.
	Person(ctx context.Context, name string) (*model.Person, error)
	// Group resolves a group by exact, case-sensitive name.
	Group(ctx context.Context, name string) (*model.Group, error)

	// HasPerson reports name-identity containment for persons.
	HasPerson(ctx context.Context, p *model.Person) bool
	// HasGroup reports name-identity containment for groups.
	HasGroup(ctx context.Context, g *model.Group) bool

	AddPerson(ctx context.Context, p *model.Person) error
	// RemovePerson drops the person and cascades removal of the person's
	// participation records from every group.
	RemovePerson(ctx context.Context, p *model.Person) error

	AddGroup(ctx context.Context, g *model.Group) error
	RemoveGroup(ctx context.Context, g *model.Group) error
	// SetGroup atomically replaces old with updated in the canonical store,
	// preserving its position.
	SetGroup(ctx context.Context, old, updated *model.Group) error

	// FilteredPersons returns the insertion-ordered person display view.
	FilteredPersons(ctx context.Context) []*model.Person
	// FilteredGroups returns the insertion-ordered group display view,
	// addressable by the 1-based indexes commands accept.
	FilteredGroups(ctx context.Context) []*model.Group
}

// Command is a single user intent. Inputs are captured at construction and
// validated fail-fast there; Execute performs all remaining validation before
// the first mutation, so a failing command leaves the Model untouched.
type Command interface {
	// Word returns the command word identifying the intent, e.g.
	// "grade-assignment".
	Word() string

	// Execute applies the command against m and returns the user-facing
	// outcome. Expected validation failures are returned as *Error; any other
	// error is a fault in the store itself.
	Execute(ctx context.Context, m Model) (Result, error)
}

// Result is the immutable success payload of a command: a single user-facing
// message for the caller to display.
type Result struct {
	feedback string
}

// NewResult creates a Result carrying feedback.
func NewResult(feedback string) Result {
	return Result{feedback: feedback}
}

// Feedback returns the user-facing message.
func (r Result) Feedback() string {
	return r.feedback
}
