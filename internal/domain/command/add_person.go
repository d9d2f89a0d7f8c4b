package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/roster/internal/domain/model"
)

// AddPersonWord identifies the add-person intent.
const AddPersonWord = "add-person"

// Messages produced by AddPerson.
const (
	msgAddPersonSuccess = "New person added: %s"
	msgDuplicatePerson  = "This person already exists in the address book."
)

// AddPerson adds a new person to the address book.
type AddPerson struct {
	name string
}

// NewAddPerson creates an AddPerson. The name is required.
func NewAddPerson(name string) (*AddPerson, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewError(KindInvalidArgument, "person name is required")
	}
	return &AddPerson{name: name}, nil
}

// Word returns the command word.
func (c *AddPerson) Word() string {
	return AddPersonWord
}

// Execute adds the person unless one with the same name already exists.
func (c *AddPerson) Execute(ctx context.Context, m Model) (Result, error) {
	person, err := model.NewPerson(c.name)
	if err != nil {
		return Result{}, fmt.Errorf("add person: %w", err)
	}
	if m.HasPerson(ctx, person) {
		return Result{}, NewError(KindDuplicate, msgDuplicatePerson)
	}
	if err := m.AddPerson(ctx, person); err != nil {
		return Result{}, fmt.Errorf("add person: %w", err)
	}
	return NewResult(fmt.Sprintf(msgAddPersonSuccess, c.name)), nil
}

// Equal reports value equality over every constructor field.
func (c *AddPerson) Equal(other *AddPerson) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.name == other.name
}
