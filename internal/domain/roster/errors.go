package roster

import "errors"

// Roster domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found in roster")

	// ErrInvalidRoster means an uploaded roster file is missing the required
	// "Employee ID" / "Name" columns or contains duplicate IDs.
	ErrInvalidRoster = errors.New("invalid roster file")
)
