package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrInvalidState rejects an operation not permitted by the current copy or reservation status.
	ErrInvalidState = errors.New("invalid state")
	// ErrConflict signals a concurrent mutation detected at persist time; callers may retry once.
	ErrConflict = errors.New("conflict")
	// ErrPrecondition rejects an operation before any mutation (e.g. bulk create without a catalog number).
	ErrPrecondition = errors.New("precondition missing")
	// ErrAlreadyBilled is raised by the unique (reservation, date, type) fine key; accrual skips silently.
	ErrAlreadyBilled = errors.New("fine already billed for this day")
	// ErrOutOfStock means no active available copy exists for the title right now.
	ErrOutOfStock = errors.New("no available copy")
	ErrUserName   = errors.New("username is required")
)
