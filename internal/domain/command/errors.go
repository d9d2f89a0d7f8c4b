package command

import (
	"errors"
	"fmt"
)

// Kind classifies an expected command failure for programmatic handling.
// The message carried alongside stays the user-facing text verbatim.
type Kind int

const (
	// KindUnknown marks errors that did not originate from the command layer.
	KindUnknown Kind = iota
	// KindInvalidArgument is a missing or malformed constructor input.
	KindInvalidArgument
	// KindNotFound is a referenced person or group missing from the model.
	KindNotFound
	// KindNotAMember is a person without a participation record in the
	// referenced group.
	KindNotAMember
	// KindInvalidIndex is a display-list index out of bounds.
	KindInvalidIndex
	// KindDuplicate is an edit that would collide with an existing entity.
	KindDuplicate
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindNotAMember:
		return "not_a_member"
	case KindInvalidIndex:
		return "invalid_index"
	case KindDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Error is the sole failure signal of the command layer: a kind for the
// caller's dispatch plus a human-readable message for display. Commands never
// fail silently or return a sentinel Result in its place.
type Error struct {
	kind    Kind
	message string
}

// NewError creates a command error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Errorf creates a command error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

// Error returns the user-facing message.
func (e *Error) Error() string {
	return e.message
}

// Kind returns the failure classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf extracts the Kind from err, or KindUnknown when err did not come
// from the command layer.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.kind
	}
	return KindUnknown
}
