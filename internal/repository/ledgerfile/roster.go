package ledgerfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
	"github.com/msnglobalit/attendance-backend-go/internal/fixtures"
)

// rosterRepository reads the externally-maintained roster CSV. When the file
// does not exist yet the default seed roster is served, matching the legacy
// dashboard behavior.
type rosterRepository struct {
	path string
	mu   sync.RWMutex
}

func NewRosterRepository(path string) roster.RosterRepository {
	return &rosterRepository{path: path}
}

// GetByID implements roster.RosterRepository.
func (r *rosterRepository) GetByID(ctx context.Context, employeeID string) (roster.Employee, error) {
	employees, err := r.List(ctx)
	if err != nil {
		return roster.Employee{}, err
	}
	for _, emp := range employees {
		if emp.ID == employeeID {
			return emp, nil
		}
	}
	return roster.Employee{}, roster.ErrEmployeeNotFound
}

// List implements roster.RosterRepository.
func (r *rosterRepository) List(ctx context.Context) ([]roster.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fixtures.DefaultRoster(), nil
		}
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	return roster.ParseCSV(f)
}

// Replace implements roster.RosterRepository.
func (r *rosterRepository) Replace(ctx context.Context, employees []roster.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create roster directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "roster-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp roster: %w", err)
	}
	tmpPath := tmp.Name()

	writer := csv.NewWriter(tmp)
	rows := [][]string{{"Employee ID", "Name"}}
	for _, emp := range employees {
		rows = append(rows, []string{emp.ID, emp.Name})
	}
	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write roster: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close roster: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace roster: %w", err)
	}
	return nil
}
