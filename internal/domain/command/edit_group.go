package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/roster/internal/domain/model"
)

// EditGroupWord identifies the edit-group intent.
const EditGroupWord = "edit-group"

// Messages produced by EditGroup.
const (
	msgEditGroupSuccess = "Edited Group: %s"
	msgDuplicateGroup   = "This group already exists in the address book."
	msgInvalidGroup     = "Invalid Group"
)

// EditGroup renames the group at a 1-based index of the displayed group list
// and replaces its tag set. The member list, including every participation
// record and its grades, is carried over untouched.
type EditGroup struct {
	index        int
	newGroupName string
	tags         map[model.Tag]struct{}
}

// NewEditGroup creates an EditGroup. Index must be a positive integer and the
// new name is required; a nil tag slice is normalized to an empty set.
func NewEditGroup(index int, newGroupName string, tags []model.Tag) (*EditGroup, error) {
	if index < 1 {
		return nil, NewError(KindInvalidArgument, "index must be a positive integer")
	}
	if strings.TrimSpace(newGroupName) == "" {
		return nil, NewError(KindInvalidArgument, "group name is required")
	}
	c := &EditGroup{
		index:        index,
		newGroupName: newGroupName,
		tags:         make(map[model.Tag]struct{}, len(tags)),
	}
	for _, t := range tags {
		c.tags[t] = struct{}{}
	}
	return c, nil
}

// Word returns the command word.
func (c *EditGroup) Word() string {
	return EditGroupWord
}

// Execute resolves the target group from the displayed list, builds the
// replacement with the new name, the same ordered member list, and this
// command's tags, rejects name collisions with a different group, and then
// swaps the groups atomically in the store.
func (c *EditGroup) Execute(ctx context.Context, m Model) (Result, error) {
	shown := m.FilteredGroups(ctx)
	if c.index > len(shown) {
		return Result{}, NewError(KindInvalidIndex, msgInvalidGroup)
	}
	target := shown[c.index-1]

	edited, err := model.NewGroup(c.newGroupName, target.Members(), c.tagList())
	if err != nil {
		return Result{}, fmt.Errorf("edit group: %w", err)
	}

	// Renaming a group to its own current name is not a collision.
	if !edited.SameName(target) && m.HasGroup(ctx, edited) {
		return Result{}, NewError(KindDuplicate, msgDuplicateGroup)
	}

	if err := m.SetGroup(ctx, target, edited); err != nil {
		return Result{}, fmt.Errorf("edit group: %w", err)
	}
	return NewResult(fmt.Sprintf(msgEditGroupSuccess, c.newGroupName)), nil
}

// Equal reports value equality over index, new name, and the tag set.
func (c *EditGroup) Equal(other *EditGroup) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	if c.index != other.index || c.newGroupName != other.newGroupName {
		return false
	}
	if len(c.tags) != len(other.tags) {
		return false
	}
	for t := range c.tags {
		if _, ok := other.tags[t]; !ok {
			return false
		}
	}
	return true
}

func (c *EditGroup) tagList() []model.Tag {
	out := make([]model.Tag, 0, len(c.tags))
	for t := range c.tags {
		out = append(out, t)
	}
	return out
}
