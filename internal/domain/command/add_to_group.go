package command

import (
	"context"
	"fmt"
	"strings"
)

// AddToGroupWord identifies the add-to-group intent.
const AddToGroupWord = "add-to-group"

// Messages produced by AddToGroup.
const (
	msgAddToGroupSuccess = "Added %s to group %s"
	msgAlreadyInGroup    = "%s is already in group %s"
)

// AddToGroup creates an empty participation record for a person within a
// group.
type AddToGroup struct {
	personName string
	groupName  string
}

// NewAddToGroup creates an AddToGroup. Both names are required.
func NewAddToGroup(personName, groupName string) (*AddToGroup, error) {
	if strings.TrimSpace(personName) == "" {
		return nil, NewError(KindInvalidArgument, "person name is required")
	}
	if strings.TrimSpace(groupName) == "" {
		return nil, NewError(KindInvalidArgument, "group name is required")
	}
	return &AddToGroup{personName: personName, groupName: groupName}, nil
}

// Word returns the command word.
func (c *AddToGroup) Word() string {
	return AddToGroupWord
}

// Execute resolves both entities and appends the membership record. A person
// already in the group is a duplicate, not an overwrite: the existing record
// and its grades stay untouched.
func (c *AddToGroup) Execute(ctx context.Context, m Model) (Result, error) {
	person, err := m.Person(ctx, c.personName)
	if err != nil {
		return Result{}, Errorf(KindNotFound, msgPersonNotFound, c.personName)
	}
	group, err := m.Group(ctx, c.groupName)
	if err != nil {
		return Result{}, Errorf(KindNotFound, msgGroupNotFound, c.groupName)
	}
	if _, err := group.AddMember(person); err != nil {
		return Result{}, Errorf(KindDuplicate, msgAlreadyInGroup, c.personName, c.groupName)
	}
	return NewResult(fmt.Sprintf(msgAddToGroupSuccess, c.personName, c.groupName)), nil
}

// Equal reports value equality over every constructor field.
func (c *AddToGroup) Equal(other *AddToGroup) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.personName == other.personName && c.groupName == other.groupName
}
