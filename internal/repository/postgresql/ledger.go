package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/database"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) attendance.LedgerRepository {
	return &ledgerRepository{db: db}
}

// EnsureLedgerSchema creates the partition table when it does not exist.
// Dates and entry times are kept in the ledger's own string formats so the
// table mirrors the file partitions row for row.
func EnsureLedgerSchema(ctx context.Context, db *database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS attendance_records (
			month_key   TEXT NOT NULL,
			employee_id TEXT NOT NULL,
			name        TEXT NOT NULL,
			date        TEXT NOT NULL,
			entry_time  TEXT NOT NULL,
			status      TEXT NOT NULL,
			position    INT  NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure ledger schema: %w", err)
	}
	return nil
}

// LoadPartition implements attendance.LedgerRepository.
func (r *ledgerRepository) LoadPartition(ctx context.Context, month attendance.Month) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, date, entry_time, status
		FROM attendance_records
		WHERE month_key = $1
		ORDER BY position
	`

	rows, err := q.Query(ctx, query, month.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to load partition %s: %w", month.Key(), err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var employeeID, name, dateStr, entryStr, status string
		if err := rows.Scan(&employeeID, &name, &dateStr, &entryStr, &status); err != nil {
			return nil, fmt.Errorf("failed to scan partition row: %w", err)
		}
		date, err := time.Parse(attendance.DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse partition date %q: %w", dateStr, err)
		}
		entry, err := time.Parse(attendance.TimeLayout, entryStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse partition entry time %q: %w", entryStr, err)
		}
		records = append(records, attendance.Record{
			EmployeeID: employeeID,
			Name:       name,
			Date:       date,
			EntryTime:  entry,
			Status:     attendance.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read partition %s: %w", month.Key(), err)
	}

	return records, nil
}

// SavePartition implements attendance.LedgerRepository. The whole partition
// is replaced in one transaction, matching the file store's rewrite.
func (r *ledgerRepository) SavePartition(ctx context.Context, month attendance.Month, records []attendance.Record) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM attendance_records WHERE month_key = $1`, month.Key()); err != nil {
			return fmt.Errorf("failed to clear partition %s: %w", month.Key(), err)
		}

		for i, rec := range records {
			_, err := tx.Exec(ctx, `
				INSERT INTO attendance_records (month_key, employee_id, name, date, entry_time, status, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`,
				month.Key(),
				rec.EmployeeID,
				rec.Name,
				rec.Date.Format(attendance.DateLayout),
				rec.EntryTime.Format(attendance.TimeLayout),
				string(rec.Status),
				i,
			)
			if err != nil {
				return fmt.Errorf("failed to insert partition row: %w", err)
			}
		}
		return nil
	})
}
