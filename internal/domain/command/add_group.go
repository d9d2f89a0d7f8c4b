package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/roster/internal/domain/model"
)

// AddGroupWord identifies the add-group intent.
const AddGroupWord = "add-group"

// msgAddGroupSuccess is the success message for AddGroup.
const msgAddGroupSuccess = "New group added: %s"

// AddGroup adds a new, empty group with an optional tag set.
type AddGroup struct {
	name string
	tags map[model.Tag]struct{}
}

// NewAddGroup creates an AddGroup. The name is required; a nil tag slice is
// normalized to an empty set.
func NewAddGroup(name string, tags []model.Tag) (*AddGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewError(KindInvalidArgument, "group name is required")
	}
	c := &AddGroup{name: name, tags: make(map[model.Tag]struct{}, len(tags))}
	for _, t := range tags {
		c.tags[t] = struct{}{}
	}
	return c, nil
}

// Word returns the command word.
func (c *AddGroup) Word() string {
	return AddGroupWord
}

// Execute adds the group unless one with the same name already exists.
func (c *AddGroup) Execute(ctx context.Context, m Model) (Result, error) {
	tags := make([]model.Tag, 0, len(c.tags))
	for t := range c.tags {
		tags = append(tags, t)
	}
	group, err := model.NewGroup(c.name, nil, tags)
	if err != nil {
		return Result{}, fmt.Errorf("add group: %w", err)
	}
	if m.HasGroup(ctx, group) {
		return Result{}, NewError(KindDuplicate, msgDuplicateGroup)
	}
	if err := m.AddGroup(ctx, group); err != nil {
		return Result{}, fmt.Errorf("add group: %w", err)
	}
	return NewResult(fmt.Sprintf(msgAddGroupSuccess, c.name)), nil
}

// Equal reports value equality over the name and the tag set.
func (c *AddGroup) Equal(other *AddGroup) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.name != other.name || len(c.tags) != len(other.tags) {
		return false
	}
	for t := range c.tags {
		if _, ok := other.tags[t]; !ok {
			return false
		}
	}
	return true
}
