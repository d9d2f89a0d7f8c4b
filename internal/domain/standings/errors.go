package standings

import "errors"

// Sentinel kinds for standings errors.
var (
	ErrNilGroup        = errors.New("nil group")
	ErrBlankAssignment = errors.New("assignment name must not be blank")
)
