package repository

import "errors"

// Sentinel kinds for address book store errors.
var (
	ErrPersonNotFound  = errors.New("person not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrDuplicatePerson = errors.New("duplicate person")
	ErrDuplicateGroup  = errors.New("duplicate group")
)
