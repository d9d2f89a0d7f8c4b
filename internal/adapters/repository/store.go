// Package repository defines the address book store interface and errors.
package repository

import (
	"context"

	"github.com/okian/roster/internal/domain/model"
)

// Store provides read/write access to the canonical person and group
// collections plus the insertion-ordered display views derived from them.
// It is the process-wide mutable state for a session: created once, mutated
// in place by every command, torn down without persistence guarantees of its
// own.
type Store interface {
	// Person resolves a person by exact name. Returns ErrPersonNotFound on a
	// miss.
	Person(ctx context.Context, name string) (*model.Person, error)
	// Group resolves a group by exact name. Returns ErrGroupNotFound on a
	// miss.
	Group(ctx context.Context, name string) (*model.Group, error)

	HasPerson(ctx context.Context, p *model.Person) bool
	HasGroup(ctx context.Context, g *model.Group) bool

	// AddPerson appends p. Returns ErrDuplicatePerson when a person with the
	// same name exists.
	AddPerson(ctx context.Context, p *model.Person) error
	// RemovePerson drops p and cascades removal of p's participation records
	// from every group.
	RemovePerson(ctx context.Context, p *model.Person) error

	// AddGroup appends g. Returns ErrDuplicateGroup when a group with the
	// same name exists.
	AddGroup(ctx context.Context, g *model.Group) error
	RemoveGroup(ctx context.Context, g *model.Group) error
	// SetGroup replaces old with updated in place, keeping its position.
	// Returns ErrGroupNotFound when old is absent and ErrDuplicateGroup when
	// updated's name belongs to a different existing group.
	SetGroup(ctx context.Context, old, updated *model.Group) error

	// FilteredPersons returns the person display view in insertion order.
	FilteredPersons(ctx context.Context) []*model.Person
	// FilteredGroups returns the group display view in insertion order.
	FilteredGroups(ctx context.Context) []*model.Group

	// Counts returns the sizes of the canonical collections.
	Counts(ctx context.Context) (persons, groups int)
}
