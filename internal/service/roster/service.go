package roster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/storage"
)

type RosterServiceImpl struct {
	repo    roster.RosterRepository
	storage storage.FileStorage
}

// NewRosterService wires roster management. storage may be nil, in which case
// upload backups are skipped.
func NewRosterService(repo roster.RosterRepository, fileStorage storage.FileStorage) roster.RosterService {
	return &RosterServiceImpl{
		repo:    repo,
		storage: fileStorage,
	}
}

// List implements roster.RosterService.
func (s *RosterServiceImpl) List(ctx context.Context) ([]roster.Employee, error) {
	return s.repo.List(ctx)
}

// ReplaceFromCSV implements roster.RosterService. The upload is parsed and
// validated in full before anything is replaced.
func (s *RosterServiceImpl) ReplaceFromCSV(ctx context.Context, r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read upload: %w", err)
	}

	employees, err := roster.ParseCSV(bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	if len(employees) == 0 {
		return 0, fmt.Errorf("%w: no employee rows", roster.ErrInvalidRoster)
	}

	s.backupUpload(ctx, raw)

	if err := s.repo.Replace(ctx, employees); err != nil {
		return 0, fmt.Errorf("failed to replace roster: %w", err)
	}

	slog.Info("Roster replaced", "employees", len(employees))
	return len(employees), nil
}

func (s *RosterServiceImpl) backupUpload(ctx context.Context, raw []byte) {
	if s.storage == nil {
		return
	}
	path := fmt.Sprintf("roster_uploads/%s.csv", uuid.NewString())
	if _, err := s.storage.Upload(ctx, bytes.NewReader(raw), path); err != nil {
		slog.Warn("Failed to back up roster upload", "error", err)
	}
}
