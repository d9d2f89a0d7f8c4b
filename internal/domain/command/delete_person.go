package command

import (
	"context"
	"fmt"
	"strings"
)

// DeletePersonWord identifies the delete-person intent.
const DeletePersonWord = "delete-person"

// msgDeletePersonSuccess is the success message for DeletePerson.
const msgDeletePersonSuccess = "Deleted Person: %s"

// DeletePerson removes a person from the address book. Removal cascades:
// every participation record referencing the person is dropped from its
// group, so no group is left with a dangling member.
type DeletePerson struct {
	name string
}

// NewDeletePerson creates a DeletePerson. The name is required.
func NewDeletePerson(name string) (*DeletePerson, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewError(KindInvalidArgument, "person name is required")
	}
	return &DeletePerson{name: name}, nil
}

// Word returns the command word.
func (c *DeletePerson) Word() string {
	return DeletePersonWord
}

// Execute resolves the person and removes them, cascading through group
// membership lists.
func (c *DeletePerson) Execute(ctx context.Context, m Model) (Result, error) {
	person, err := m.Person(ctx, c.name)
	if err != nil {
		return Result{}, Errorf(KindNotFound, msgPersonNotFound, c.name)
	}
	if err := m.RemovePerson(ctx, person); err != nil {
		return Result{}, fmt.Errorf("delete person: %w", err)
	}
	return NewResult(fmt.Sprintf(msgDeletePersonSuccess, c.name)), nil
}

// Equal reports value equality over every constructor field.
func (c *DeletePerson) Equal(other *DeletePerson) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.name == other.name
}
