package model

import "strings"

// Tag is a label attached to a Group. Equality is by label value, so Tag is
// kept comparable and usable as a map key.
type Tag struct {
	label string
}

// NewTag creates a Tag. The label is required and must not be blank.
func NewTag(label string) (Tag, error) {
	if strings.TrimSpace(label) == "" {
		return Tag{}, ErrBlankTag
	}
	return Tag{label: label}, nil
}

// Label returns the tag's label.
func (t Tag) Label() string {
	return t.label
}
