package roster

// Employee is one roster row. The roster is externally maintained; the core
// treats it as a read-only lookup keyed by ID and never mutates rows in place.
type Employee struct {
	ID   string `json:"employee_id"`
	Name string `json:"name"`
}

// PlaceholderName is the display name synthesized when a detection references
// an employee the roster does not know.
func PlaceholderName(employeeID string) string {
	return "Employee " + employeeID
}
