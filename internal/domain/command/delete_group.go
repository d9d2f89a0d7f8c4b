package command

import (
	"context"
	"fmt"
)

// DeleteGroupWord identifies the delete-group intent.
const DeleteGroupWord = "delete-group"

// msgDeleteGroupSuccess is the success message for DeleteGroup.
const msgDeleteGroupSuccess = "Deleted Group: %s"

// DeleteGroup removes the group at a 1-based index of the displayed group
// list.
type DeleteGroup struct {
	index int
}

// NewDeleteGroup creates a DeleteGroup. Index must be a positive integer.
func NewDeleteGroup(index int) (*DeleteGroup, error) {
	if index < 1 {
		return nil, NewError(KindInvalidArgument, "index must be a positive integer")
	}
	return &DeleteGroup{index: index}, nil
}

// Word returns the command word.
func (c *DeleteGroup) Word() string {
	return DeleteGroupWord
}

// Execute resolves the target group from the displayed list and removes it.
func (c *DeleteGroup) Execute(ctx context.Context, m Model) (Result, error) {
	shown := m.FilteredGroups(ctx)
	if c.index > len(shown) {
		return Result{}, NewError(KindInvalidIndex, msgInvalidGroup)
	}
	target := shown[c.index-1]
	if err := m.RemoveGroup(ctx, target); err != nil {
		return Result{}, fmt.Errorf("delete group: %w", err)
	}
	return NewResult(fmt.Sprintf(msgDeleteGroupSuccess, target.Name())), nil
}

// Equal reports value equality over every constructor field.
func (c *DeleteGroup) Equal(other *DeleteGroup) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.index == other.index
}
