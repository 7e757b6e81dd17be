package application

import "errors"

// Error kinds surfaced by the workflow engine. Callers distinguish them with
// errors.Is; the HTTP layer maps each to its own status code.
var (
	// ErrNotFound: the referenced id has no row.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState: the operation is not permitted in the timesheet's
	// current status.
	ErrInvalidState = errors.New("operation not allowed in current status")

	// ErrForbidden: the actor's role has no transition for the current status.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrEmptyTimesheet: submission attempted with zero entries.
	ErrEmptyTimesheet = errors.New("cannot submit empty timesheet")

	// ErrConcurrentModification: the optimistic version check failed; re-read
	// and retry.
	ErrConcurrentModification = errors.New("timesheet was modified concurrently, retry")

	// ErrValidation: malformed input rejected before any store mutation.
	ErrValidation = errors.New("validation failed")
)
