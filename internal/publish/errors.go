package publish

import "errors"

var (
	// ErrValidation marks a run aborted because the catalog failed
	// validation. No target is written when this is returned.
	ErrValidation = errors.New("catalog validation failed")

	// ErrLocked marks a run that could not acquire the run lock.
	ErrLocked = errors.New("another easel run is in progress")
)
