package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/roster/internal/domain/model"
)

// In-memory Store implementation.
//
// The command layer's contract is single-writer, but the HTTP adapter may
// serve concurrent requests, so all state is guarded by an RWMutex. Canonical
// order is insertion order; the filtered views preserve it.

// PersonFilter selects persons for the display view. A nil filter shows all.
type PersonFilter func(*model.Person) bool

// GroupFilter selects groups for the display view. A nil filter shows all.
type GroupFilter func(*model.Group) bool

// MemStore holds the full person and group collections for a session.
type MemStore struct {
	mu           sync.RWMutex
	persons      []*model.Person
	groups       []*model.Group
	personFilter PersonFilter
	groupFilter  GroupFilter
}

// NewMemStore creates an empty MemStore.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Person resolves a person by exact, case-sensitive name.
func (s *MemStore) Person(_ context.Context, name string) (*model.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.persons {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPersonNotFound, name)
}

// Group resolves a group by exact, case-sensitive name.
func (s *MemStore) Group(_ context.Context, name string) (*model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.groups {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, name)
}

// HasPerson reports whether a person with p's name exists.
func (s *MemStore) HasPerson(_ context.Context, p *model.Person) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfPerson(p) >= 0
}

// HasGroup reports whether a group with g's name exists.
func (s *MemStore) HasGroup(_ context.Context, g *model.Group) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfGroup(g) >= 0
}

// AddPerson appends p to the canonical person collection.
func (s *MemStore) AddPerson(_ context.Context, p *model.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfPerson(p) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.Name())
	}
	s.persons = append(s.persons, p)
	return nil
}

// RemovePerson drops p and every participation record referencing p from
// every group's member list, so no group is left with a dangling member.
func (s *MemStore) RemovePerson(_ context.Context, p *model.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfPerson(p)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, p.Name())
	}
	s.persons = append(s.persons[:i], s.persons[i+1:]...)
	for _, g := range s.groups {
		g.RemoveMember(p)
	}
	return nil
}

// AddGroup appends g to the canonical group collection.
func (s *MemStore) AddGroup(_ context.Context, g *model.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfGroup(g) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateGroup, g.Name())
	}
	s.groups = append(s.groups, g)
	return nil
}

// RemoveGroup drops g from the canonical group collection.
func (s *MemStore) RemoveGroup(_ context.Context, g *model.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfGroup(g)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, g.Name())
	}
	s.groups = append(s.groups[:i], s.groups[i+1:]...)
	return nil
}

// SetGroup replaces old with updated at old's position. The swap is atomic
// under the store lock: either both checks pass and the slot is replaced, or
// nothing changes.
func (s *MemStore) SetGroup(_ context.Context, old, updated *model.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfGroup(old)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, old.Name())
	}
	if j := s.indexOfGroup(updated); j >= 0 && j != i {
		return fmt.Errorf("%w: %s", ErrDuplicateGroup, updated.Name())
	}
	s.groups[i] = updated
	return nil
}

// Persons returns the canonical person collection in insertion order,
// ignoring any display filter.
func (s *MemStore) Persons(_ context.Context) []*model.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Person, len(s.persons))
	copy(out, s.persons)
	return out
}

// Groups returns the canonical group collection in insertion order,
// ignoring any display filter.
func (s *MemStore) Groups(_ context.Context) []*model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// FilteredPersons returns the person display view in insertion order.
func (s *MemStore) FilteredPersons(_ context.Context) []*model.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Person, 0, len(s.persons))
	for _, p := range s.persons {
		if s.personFilter == nil || s.personFilter(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilteredGroups returns the group display view in insertion order.
func (s *MemStore) FilteredGroups(_ context.Context) []*model.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Group, 0, len(s.groups))
	for _, g := range s.groups {
		if s.groupFilter == nil || s.groupFilter(g) {
			out = append(out, g)
		}
	}
	return out
}

// SetPersonFilter replaces the person display filter. Nil shows all persons.
func (s *MemStore) SetPersonFilter(_ context.Context, f PersonFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personFilter = f
}

// SetGroupFilter replaces the group display filter. Nil shows all groups.
func (s *MemStore) SetGroupFilter(_ context.Context, f GroupFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groupFilter = f
}

// Counts returns the sizes of the canonical collections.
func (s *MemStore) Counts(_ context.Context) (persons, groups int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.persons), len(s.groups)
}

// Reset replaces the full store contents. Used when loading a snapshot.
func (s *MemStore) Reset(_ context.Context, persons []*model.Person, groups []*model.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons = append([]*model.Person(nil), persons...)
	s.groups = append([]*model.Group(nil), groups...)
}

// indexOfPerson must be called with the lock held.
func (s *MemStore) indexOfPerson(p *model.Person) int {
	for i, existing := range s.persons {
		if existing.Equal(p) {
			return i
		}
	}
	return -1
}

// indexOfGroup must be called with the lock held.
func (s *MemStore) indexOfGroup(g *model.Group) int {
	for i, existing := range s.groups {
		if existing.SameName(g) {
			return i
		}
	}
	return -1
}
