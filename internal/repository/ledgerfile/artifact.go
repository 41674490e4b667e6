package ledgerfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/storage"
)

// artifactWriter regenerates Attendance_Report_<month>.csv, the derived
// display view consumed downstream. Entry times are not part of the artifact.
type artifactWriter struct {
	storage storage.FileStorage
}

func NewArtifactWriter(fileStorage storage.FileStorage) attendance.ReportArtifactWriter {
	return &artifactWriter{storage: fileStorage}
}

// WriteReportArtifact implements attendance.ReportArtifactWriter.
func (w *artifactWriter) WriteReportArtifact(ctx context.Context, month attendance.Month, records []attendance.Record) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	rows := [][]string{{"Employee ID", "Name", "Status"}}
	for _, rec := range records {
		rows = append(rows, []string{rec.EmployeeID, rec.Name, string(rec.Status)})
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to render report artifact: %w", err)
	}

	name := fmt.Sprintf("Attendance_Report_%s.csv", month.Key())
	if _, err := w.storage.Upload(ctx, &buf, name); err != nil {
		return fmt.Errorf("failed to store report artifact %s: %w", name, err)
	}
	return nil
}
