package attendance

import (
	"context"
)

// LedgerRepository is the partition-granular store behind the ledger. A
// partition is always read and written whole; there is no row-level update.
// Implementations: CSV monthly files (default) and PostgreSQL.
type LedgerRepository interface {
	// LoadPartition returns every record in the month partition. A partition
	// that does not exist yet yields an empty slice, not an error.
	LoadPartition(ctx context.Context, month Month) ([]Record, error)

	// SavePartition rewrites the month partition with exactly these records.
	SavePartition(ctx context.Context, month Month, records []Record) error
}

// ReportArtifactWriter regenerates the derived, display-oriented report for a
// month (Employee ID, Name, Status; entry times dropped). Called after every
// successful mutation.
type ReportArtifactWriter interface {
	WriteReportArtifact(ctx context.Context, month Month, records []Record) error
}
