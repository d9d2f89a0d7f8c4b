package command

import (
	"context"
	"fmt"
	"strings"
)

// RemoveFromGroupWord identifies the remove-from-group intent.
const RemoveFromGroupWord = "remove-from-group"

// msgRemoveFromGroupSuccess is the success message for RemoveFromGroup.
const msgRemoveFromGroupSuccess = "Removed %s from group %s"

// RemoveFromGroup drops a person's participation record, including its
// grades, from a group. The person stays in the address book.
type RemoveFromGroup struct {
	personName string
	groupName  string
}

// NewRemoveFromGroup creates a RemoveFromGroup. Both names are required.
func NewRemoveFromGroup(personName, groupName string) (*RemoveFromGroup, error) {
	if strings.TrimSpace(personName) == "" {
		return nil, NewError(KindInvalidArgument, "person name is required")
	}
	if strings.TrimSpace(groupName) == "" {
		return nil, NewError(KindInvalidArgument, "group name is required")
	}
	return &RemoveFromGroup{personName: personName, groupName: groupName}, nil
}

// Word returns the command word.
func (c *RemoveFromGroup) Word() string {
	return RemoveFromGroupWord
}

// Execute resolves both entities and removes the membership record.
func (c *RemoveFromGroup) Execute(ctx context.Context, m Model) (Result, error) {
	person, err := m.Person(ctx, c.personName)
	if err != nil {
		return Result{}, Errorf(KindNotFound, msgPersonNotFound, c.personName)
	}
	group, err := m.Group(ctx, c.groupName)
	if err != nil {
		return Result{}, Errorf(KindNotFound, msgGroupNotFound, c.groupName)
	}
	if !group.RemoveMember(person) {
		return Result{}, Errorf(KindNotAMember, msgNotAMember, c.personName, c.groupName)
	}
	return NewResult(fmt.Sprintf(msgRemoveFromGroupSuccess, c.personName, c.groupName)), nil
}

// Equal reports value equality over every constructor field.
func (c *RemoveFromGroup) Equal(other *RemoveFromGroup) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.personName == other.personName && c.groupName == other.groupName
}
