package ledgerfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
)

var ledgerHeader = []string{"Employee ID", "Name", "Date", "Entry_Time", "Status"}

// ledgerRepository keeps one CSV file per month partition under dataDir,
// e.g. Attendance_Raw_January_2026.csv. Partitions are read and rewritten
// whole; a per-month cache avoids rereading between mutations and is
// invalidated on every save.
type ledgerRepository struct {
	dataDir string

	mu    sync.RWMutex
	cache map[string][]attendance.Record
}

func NewLedgerRepository(dataDir string) (attendance.LedgerRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}
	return &ledgerRepository{
		dataDir: dataDir,
		cache:   make(map[string][]attendance.Record),
	}, nil
}

func (r *ledgerRepository) partitionPath(month attendance.Month) string {
	return filepath.Join(r.dataDir, fmt.Sprintf("Attendance_Raw_%s.csv", month.Key()))
}

// LoadPartition implements attendance.LedgerRepository.
func (r *ledgerRepository) LoadPartition(ctx context.Context, month attendance.Month) ([]attendance.Record, error) {
	r.mu.RLock()
	if cached, ok := r.cache[month.Key()]; ok {
		out := make([]attendance.Record, len(cached))
		copy(out, cached)
		r.mu.RUnlock()
		return out, nil
	}
	r.mu.RUnlock()

	path := r.partitionPath(month)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Lazy partition creation: first write in a new month creates it.
			return []attendance.Record{}, nil
		}
		return nil, fmt.Errorf("failed to open partition %s: %w", month.Key(), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read partition %s: %w", month.Key(), err)
	}

	records := make([]attendance.Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rec, ok := parseRow(row)
		if !ok {
			slog.Warn("Skipping unparsable ledger row", "partition", month.Key(), "line", i+1)
			continue
		}
		records = append(records, rec)
	}

	r.mu.Lock()
	r.cache[month.Key()] = records
	r.mu.Unlock()

	out := make([]attendance.Record, len(records))
	copy(out, records)
	return out, nil
}

// SavePartition implements attendance.LedgerRepository. The partition is
// written to a temp file and renamed into place so a failed write never
// leaves a half-written partition behind.
func (r *ledgerRepository) SavePartition(ctx context.Context, month attendance.Month, records []attendance.Record) error {
	path := r.partitionPath(month)

	tmp, err := os.CreateTemp(r.dataDir, "partition-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp partition: %w", err)
	}
	tmpPath := tmp.Name()

	writer := csv.NewWriter(tmp)
	rows := [][]string{ledgerHeader}
	for _, rec := range records {
		rows = append(rows, []string{
			rec.EmployeeID,
			rec.Name,
			rec.Date.Format(attendance.DateLayout),
			rec.EntryTime.Format(attendance.TimeLayout),
			string(rec.Status),
		})
	}
	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write partition %s: %w", month.Key(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close partition %s: %w", month.Key(), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace partition %s: %w", month.Key(), err)
	}

	r.mu.Lock()
	stored := make([]attendance.Record, len(records))
	copy(stored, records)
	r.cache[month.Key()] = stored
	r.mu.Unlock()

	return nil
}

func parseRow(row []string) (attendance.Record, bool) {
	if len(row) < 5 {
		return attendance.Record{}, false
	}
	date, err := time.Parse(attendance.DateLayout, row[2])
	if err != nil {
		return attendance.Record{}, false
	}
	entry, err := time.Parse(attendance.TimeLayout, row[3])
	if err != nil {
		return attendance.Record{}, false
	}
	return attendance.Record{
		EmployeeID: row[0],
		Name:       row[1],
		Date:       date,
		EntryTime:  entry,
		Status:     attendance.Status(row[4]),
	}, true
}
