package engine

import "errors"

var (
	// ErrConflict indicates the target of a write already exists.
	ErrConflict = errors.New("conflict detected")

	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrDrift indicates the document changed on disk while a drag was in flight.
	ErrDrift = errors.New("drift detected")

	// ErrDragActive indicates a drag is in flight for the document.
	ErrDragActive = errors.New("drag in progress")

	// ErrNoDrag indicates no drag is in flight for the document.
	ErrNoDrag = errors.New("no drag in progress")
)
