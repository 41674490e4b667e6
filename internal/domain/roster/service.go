package roster

import (
	"context"
	"io"
)

// RosterService defines business logic for roster management
type RosterService interface {
	// List returns the full roster.
	List(ctx context.Context) ([]Employee, error)

	// ReplaceFromCSV validates an uploaded "Employee ID,Name" CSV and swaps
	// the roster wholesale. Returns the number of employees loaded.
	ReplaceFromCSV(ctx context.Context, r io.Reader) (int, error)
}
