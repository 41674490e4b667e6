package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
)

type LedgerServiceImpl struct {
	repo       attendance.LedgerRepository
	artifacts  attendance.ReportArtifactWriter
	classifier Classifier
	now        func() time.Time
}

func NewLedgerService(
	repo attendance.LedgerRepository,
	artifacts attendance.ReportArtifactWriter,
	classifier Classifier,
	now func() time.Time,
) attendance.LedgerService {
	if now == nil {
		now = time.Now
	}
	return &LedgerServiceImpl{
		repo:       repo,
		artifacts:  artifacts,
		classifier: classifier,
		now:        now,
	}
}

// Mark implements attendance.LedgerService.
func (s *LedgerServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	entryAt, date := s.resolveEntry(req)
	month := attendance.MonthOf(date)

	records, err := s.repo.LoadPartition(ctx, month)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load partition %s: %w", month.Key(), err)
	}

	dateKey := date.Format(attendance.DateLayout)
	for _, rec := range records {
		if rec.DateKey() == dateKey && rec.EmployeeID == req.EmployeeID {
			return attendance.RecordResponse{}, attendance.ErrAlreadyMarked
		}
	}

	record := attendance.Record{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Date:       date,
		EntryTime:  entryAt,
		Status:     s.classifier.Classify(entryAt),
	}

	records = append(records, record)
	if err := s.repo.SavePartition(ctx, month, records); err != nil {
		// The attempted record is discarded; nothing partial was written.
		return attendance.RecordResponse{}, fmt.Errorf("failed to save partition %s: %w", month.Key(), err)
	}

	s.regenerateArtifact(ctx, month, records)

	slog.Info("Attendance marked",
		"employee_id", record.EmployeeID,
		"status", record.Status,
		"entry_time", record.EntryTime.Format(attendance.TimeLayout))

	return attendance.NewRecordResponse(record), nil
}

// HasMarked implements attendance.LedgerService.
func (s *LedgerServiceImpl) HasMarked(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	records, err := s.repo.LoadPartition(ctx, attendance.MonthOf(date))
	if err != nil {
		return false, fmt.Errorf("failed to load partition: %w", err)
	}
	dateKey := date.Format(attendance.DateLayout)
	for _, rec := range records {
		if rec.DateKey() == dateKey && rec.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

// Clear implements attendance.LedgerService.
func (s *LedgerServiceImpl) Clear(ctx context.Context, date time.Time) (attendance.ClearResponse, error) {
	month := attendance.MonthOf(date)
	records, err := s.repo.LoadPartition(ctx, month)
	if err != nil {
		return attendance.ClearResponse{}, fmt.Errorf("failed to load partition %s: %w", month.Key(), err)
	}

	dateKey := date.Format(attendance.DateLayout)
	kept := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		if rec.DateKey() != dateKey {
			kept = append(kept, rec)
		}
	}
	removed := len(records) - len(kept)

	if removed > 0 {
		if err := s.repo.SavePartition(ctx, month, kept); err != nil {
			return attendance.ClearResponse{}, fmt.Errorf("failed to save partition %s: %w", month.Key(), err)
		}
		s.regenerateArtifact(ctx, month, kept)
		slog.Info("Attendance entries cleared", "date", dateKey, "removed", removed)
	}

	return attendance.ClearResponse{Date: dateKey, Removed: removed}, nil
}

// ListForDate implements attendance.LedgerService.
func (s *LedgerServiceImpl) ListForDate(ctx context.Context, date time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.repo.LoadPartition(ctx, attendance.MonthOf(date))
	if err != nil {
		return nil, fmt.Errorf("failed to load partition: %w", err)
	}

	dateKey := date.Format(attendance.DateLayout)
	out := make([]attendance.RecordResponse, 0)
	for _, rec := range records {
		if rec.DateKey() == dateKey {
			out = append(out, attendance.NewRecordResponse(rec))
		}
	}
	return out, nil
}

// ListAll implements attendance.LedgerService.
func (s *LedgerServiceImpl) ListAll(ctx context.Context) ([]attendance.RecordResponse, error) {
	records, err := s.repo.LoadPartition(ctx, attendance.MonthOf(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to load partition: %w", err)
	}

	out := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendance.NewRecordResponse(rec))
	}
	return out, nil
}

// ExportDate implements attendance.LedgerService.
func (s *LedgerServiceImpl) ExportDate(ctx context.Context, date time.Time) ([]byte, error) {
	records, err := s.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	rows := [][]string{{"Employee ID", "Name", "Date", "Entry_Time", "Status"}}
	for _, rec := range records {
		rows = append(rows, []string{rec.EmployeeID, rec.Name, rec.Date, rec.EntryTime, rec.Status})
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}
	return buf.Bytes(), nil
}

// resolveEntry picks the entry time: programmatic override, explicit "HH:MM"
// request field, or the service clock, in that order. Seconds are dropped;
// entry times are minute granular.
func (s *LedgerServiceImpl) resolveEntry(req attendance.MarkRequest) (entryAt, date time.Time) {
	switch {
	case !req.At.IsZero():
		entryAt = req.At
		date = req.At
	case req.EntryTime != "":
		// Validated upstream; parse cannot fail here.
		parsed, _ := time.Parse(attendance.TimeLayout, req.EntryTime)
		entryAt = parsed
		date = s.now()
	default:
		entryAt = s.now()
		date = entryAt
	}
	entryAt = entryAt.Truncate(time.Minute)
	return entryAt, date
}

// Artifact regeneration is best effort: the record is already durable, so a
// failed rewrite only logs.
func (s *LedgerServiceImpl) regenerateArtifact(ctx context.Context, month attendance.Month, records []attendance.Record) {
	if s.artifacts == nil {
		return
	}
	if err := s.artifacts.WriteReportArtifact(ctx, month, records); err != nil {
		slog.Warn("Failed to regenerate report artifact", "month", month.Key(), "error", err)
	}
}
