package roster

import "context"

// RosterRepository is the employee lookup table. Rows are unique by ID.
type RosterRepository interface {
	// GetByID returns the employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, employeeID string) (Employee, error)

	// List returns the full roster in source order.
	List(ctx context.Context) ([]Employee, error)

	// Replace swaps the roster wholesale (administrative upload).
	Replace(ctx context.Context, employees []Employee) error
}
