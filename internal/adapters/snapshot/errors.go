package snapshot

import "errors"

// Sentinel kinds for snapshot errors.
var (
	ErrEmptyPath = errors.New("snapshot path must not be empty")
	ErrOpen      = errors.New("open snapshot failed")
	ErrSave      = errors.New("save snapshot failed")
	ErrLoad      = errors.New("load snapshot failed")
)
