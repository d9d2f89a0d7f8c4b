package model

import "errors"

// Sentinel kinds for entity construction errors.
var (
	ErrBlankPersonName = errors.New("person name must not be blank")
	ErrBlankGroupName  = errors.New("group name must not be blank")
	ErrBlankTag        = errors.New("tag label must not be blank")
	ErrDuplicateMember = errors.New("person is already a member of the group")
)
