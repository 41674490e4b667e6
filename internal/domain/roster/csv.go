package roster

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ParseCSV reads "Employee ID,Name" rows. Column order is taken from the
// header; extra columns are ignored. Rows must be unique by ID.
func ParseCSV(r io.Reader) ([]Employee, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidRoster)
	}

	idCol, nameCol := -1, -1
	for i, col := range rows[0] {
		switch col {
		case "Employee ID":
			idCol = i
		case "Name":
			nameCol = i
		}
	}
	if idCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("%w: missing Employee ID or Name column", ErrInvalidRoster)
	}

	seen := make(map[string]bool)
	employees := make([]Employee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) <= idCol || len(row) <= nameCol {
			continue
		}
		id := row[idCol]
		if id == "" {
			continue
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate employee id %s", ErrInvalidRoster, id)
		}
		seen[id] = true
		employees = append(employees, Employee{ID: id, Name: row[nameCol]})
	}
	return employees, nil
}
