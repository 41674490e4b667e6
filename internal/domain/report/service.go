package report

import (
	"context"
	"time"
)

// ReportService derives read-only aggregate views from the ledger
type ReportService interface {
	// DailySummary counts the date's records by status.
	DailySummary(ctx context.Context, date time.Time) (DailySummary, error)

	// MonthlyEmployeeSummary projects the active month per roster employee.
	// Employees with no records this month get an all-zero row.
	MonthlyEmployeeSummary(ctx context.Context) (MonthlyReport, error)
}
