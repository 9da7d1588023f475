package tracker

import "errors"

var (
	// ErrCycle is returned when a re-parent operation would make an
	// activity an ancestor of itself.
	ErrCycle = errors.New("re-parenting would create a cycle in the activity tree")

	// ErrNameTaken is returned when creating a top-level activity whose
	// name is already in use.
	ErrNameTaken = errors.New("an activity with this name already exists")

	// ErrActivityNotFound is returned by operations that require an
	// existing activity. Plain lookups never return it; they report
	// absence with a nil result.
	ErrActivityNotFound = errors.New("activity not found")
)
