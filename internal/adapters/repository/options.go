// Package repository defines the address book store interface and errors.
package repository

import "github.com/okian/roster/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithCapacity presizes the canonical collections.
func WithCapacity(persons, groups int) Option {
	return func(s *MemStore) {
		if persons > 0 {
			s.persons = make([]*model.Person, 0, persons)
		}
		if groups > 0 {
			s.groups = make([]*model.Group, 0, groups)
		}
	}
}
