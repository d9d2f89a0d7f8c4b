// Package model contains the address book entities passed between layers.
package model

import "strings"

// Person is a named individual tracked in the address book.
// Identity is the name, compared case-sensitively; a Person is treated as a
// value for equality and list membership.
type Person struct {
	name string
}

// NewPerson creates a Person. The name is required and must not be blank.
func NewPerson(name string) (*Person, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankPersonName
	}
	return &Person{name: name}, nil
}

// Name returns the person's name.
func (p *Person) Name() string {
	return p.name
}

// Equal reports whether both persons share the same name.
func (p *Person) Equal(other *Person) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.name == other.name
}
