package attendance

import (
	"context"
	"time"
)

// LedgerService defines business logic for the attendance ledger
type LedgerService interface {
	// Mark records attendance once per employee per day. A second mark for the
	// same day fails with ErrAlreadyMarked and leaves the partition unchanged.
	Mark(ctx context.Context, req MarkRequest) (RecordResponse, error)

	// HasMarked reports whether a record exists for the employee on the date.
	// Used by detection intake as the cross-batch duplicate guard.
	HasMarked(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// Clear removes every record for the date from its month partition.
	// Irreversible; intended for administrative correction.
	Clear(ctx context.Context, date time.Time) (ClearResponse, error)

	// ListForDate returns the records for one day.
	ListForDate(ctx context.Context, date time.Time) ([]RecordResponse, error)

	// ListAll returns the current month's records.
	ListAll(ctx context.Context) ([]RecordResponse, error)

	// ExportDate renders one day's records as CSV for download.
	ExportDate(ctx context.Context, date time.Time) ([]byte, error)
}
