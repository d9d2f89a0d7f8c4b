package model

import (
	"sort"
	"strings"
)

// Group is a named collection of persons with shared tags. Identity is the
// group name; the member list is ordered and holds at most one entry per
// person.
type Group struct {
	name    string
	members []*GroupMemberDetail
	tags    map[Tag]struct{}
}

// NewGroup creates a Group from an ordered member list and a tag set. The
// member list must not contain two entries for the same person. A nil tag
// slice is normalized to an empty set.
func NewGroup(name string, members []*GroupMemberDetail, tags []Tag) (*Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankGroupName
	}
	g := &Group{
		name:    name,
		members: make([]*GroupMemberDetail, 0, len(members)),
		tags:    make(map[Tag]struct{}, len(tags)),
	}
	for _, d := range members {
		if g.HasMember(d.Person()) {
			return nil, ErrDuplicateMember
		}
		g.members = append(g.members, d)
	}
	for _, t := range tags {
		g.tags[t] = struct{}{}
	}
	return g, nil
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Members returns the ordered member list. The slice is a copy; the details
// themselves are shared.
func (g *Group) Members() []*GroupMemberDetail {
	out := make([]*GroupMemberDetail, len(g.members))
	copy(out, g.members)
	return out
}

// Tags returns the tag set sorted by label for deterministic iteration.
func (g *Group) Tags() []Tag {
	out := make([]Tag, 0, len(g.tags))
	for t := range g.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label() < out[j].Label() })
	return out
}

// HasTag reports whether the group carries the given tag.
func (g *Group) HasTag(t Tag) bool {
	_, ok := g.tags[t]
	return ok
}

// MemberDetail returns the participation record for person, if any.
func (g *Group) MemberDetail(person *Person) (*GroupMemberDetail, bool) {
	for _, d := range g.members {
		if d.Person().Equal(person) {
			return d, true
		}
	}
	return nil, false
}

// HasMember reports whether person has a participation record in the group.
func (g *Group) HasMember(person *Person) bool {
	_, ok := g.MemberDetail(person)
	return ok
}

// AddMember appends an empty participation record for person.
// Returns ErrDuplicateMember if the person is already in the group.
func (g *Group) AddMember(person *Person) (*GroupMemberDetail, error) {
	if g.HasMember(person) {
		return nil, ErrDuplicateMember
	}
	d := NewGroupMemberDetail(person)
	g.members = append(g.members, d)
	return d, nil
}

// RemoveMember drops the participation record for person.
// Reports whether a record was removed.
func (g *Group) RemoveMember(person *Person) bool {
	for i, d := range g.members {
		if d.Person().Equal(person) {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return true
		}
	}
	return false
}

// SameName reports whether both groups share the same identity.
func (g *Group) SameName(other *Group) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	return g.name == other.name
}
