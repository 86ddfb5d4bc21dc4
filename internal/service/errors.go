package service

import "errors"

// Domain error taxonomy. Missing records surface as store.ErrNotFound;
// handlers map each kind onto an HTTP status.
var (
	// ErrInvalidArgument marks malformed input: unknown enum values,
	// unrecognized action types, missing required fields.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState marks a transition that does not apply to the
	// record's current state, such as restoring a task that is not trashed.
	ErrInvalidState = errors.New("invalid state")
)
