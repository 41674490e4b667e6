package report

import (
	"context"
	"fmt"
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/report"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
)

type ReportServiceImpl struct {
	ledger attendance.LedgerRepository
	roster roster.RosterRepository
	now    func() time.Time
}

func NewReportService(
	ledger attendance.LedgerRepository,
	rosterRepo roster.RosterRepository,
	now func() time.Time,
) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{
		ledger: ledger,
		roster: rosterRepo,
		now:    now,
	}
}

// DailySummary implements report.ReportService.
func (s *ReportServiceImpl) DailySummary(ctx context.Context, date time.Time) (report.DailySummary, error) {
	records, err := s.ledger.LoadPartition(ctx, attendance.MonthOf(date))
	if err != nil {
		return report.DailySummary{}, fmt.Errorf("failed to load partition: %w", err)
	}

	summary := report.DailySummary{Date: date.Format(attendance.DateLayout)}
	for _, rec := range records {
		if rec.DateKey() != summary.Date {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusLeave:
			summary.Leave++
		}
		summary.Total++
	}
	return summary, nil
}

// MonthlyEmployeeSummary implements report.ReportService. Every roster
// employee gets a row even with no records this month; records for IDs no
// longer on the roster are not shown.
func (s *ReportServiceImpl) MonthlyEmployeeSummary(ctx context.Context) (report.MonthlyReport, error) {
	now := s.now()
	month := attendance.MonthOf(now)

	records, err := s.ledger.LoadPartition(ctx, month)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to load partition %s: %w", month.Key(), err)
	}

	employees, err := s.roster.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to load roster: %w", err)
	}

	byEmployee := make(map[string]*report.EmployeeMonthlySummary, len(employees))
	rows := make([]report.EmployeeMonthlySummary, len(employees))
	for i, emp := range employees {
		rows[i] = report.EmployeeMonthlySummary{EmployeeID: emp.ID, Name: emp.Name}
		byEmployee[emp.ID] = &rows[i]
	}

	for _, rec := range records {
		row, ok := byEmployee[rec.EmployeeID]
		if !ok {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			row.TotalPresent++
		case attendance.StatusLate:
			row.TotalLate++
		case attendance.StatusAbsent:
			row.TotalAbsent++
		case attendance.StatusLeave:
			row.TotalLeave++
		}
		row.TotalEntries++
	}

	// Two late arrivals convert to one derived leave unit, floor division.
	for i := range rows {
		rows[i].TotalLeaves = rows[i].TotalLate / 2
	}

	return report.MonthlyReport{
		Month:       month.Key(),
		GeneratedAt: now.Format(time.RFC3339),
		Employees:   rows,
	}, nil
}
