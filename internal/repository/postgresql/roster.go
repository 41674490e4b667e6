package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/database"
)

type rosterRepository struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepository{db: db}
}

func EnsureRosterSchema(ctx context.Context, db *database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS employees (
			employee_id TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			position    INT  NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure roster schema: %w", err)
	}
	return nil
}

// GetByID implements roster.RosterRepository.
func (r *rosterRepository) GetByID(ctx context.Context, employeeID string) (roster.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var emp roster.Employee
	err := q.QueryRow(ctx, `
		SELECT employee_id, name FROM employees WHERE employee_id = $1
	`, employeeID).Scan(&emp.ID, &emp.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return roster.Employee{}, roster.ErrEmployeeNotFound
		}
		return roster.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return emp, nil
}

// List implements roster.RosterRepository.
func (r *rosterRepository) List(ctx context.Context) ([]roster.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id, name FROM employees ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	defer rows.Close()

	employees := make([]roster.Employee, 0)
	for rows.Next() {
		var emp roster.Employee
		if err := rows.Scan(&emp.ID, &emp.Name); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return employees, nil
}

// Replace implements roster.RosterRepository.
func (r *rosterRepository) Replace(ctx context.Context, employees []roster.Employee) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM employees`); err != nil {
			return fmt.Errorf("failed to clear roster: %w", err)
		}
		for i, emp := range employees {
			_, err := tx.Exec(ctx, `
				INSERT INTO employees (employee_id, name, position) VALUES ($1, $2, $3)
			`, emp.ID, emp.Name, i)
			if err != nil {
				return fmt.Errorf("failed to insert employee %s: %w", emp.ID, err)
			}
		}
		return nil
	})
}
