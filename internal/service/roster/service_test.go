package roster

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/storage"
	"github.com/msnglobalit/attendance-backend-go/internal/repository/ledgerfile"
)

func newTestRosterService(t *testing.T) (roster.RosterService, string) {
	t.Helper()
	dataDir := t.TempDir()

	local, err := storage.NewLocalStorage(dataDir)
	require.NoError(t, err)

	repo := ledgerfile.NewRosterRepository(filepath.Join(dataDir, "employees_data.csv"))
	return NewRosterService(repo, local), dataDir
}

func TestRosterService_List_DefaultsWhenFileMissing(t *testing.T) {
	svc, _ := newTestRosterService(t)

	employees, err := svc.List(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, employees)
	assert.Equal(t, "MSN001", employees[0].ID)
	assert.Equal(t, "Ramsha Tariq", employees[0].Name)
}

func TestRosterService_ReplaceFromCSV_Success(t *testing.T) {
	svc, dataDir := newTestRosterService(t)
	ctx := context.Background()

	upload := "Employee ID,Name\nEMP100,Alice Khan\nEMP101,Bilal Raza\n"
	count, err := svc.ReplaceFromCSV(ctx, strings.NewReader(upload))

	require.NoError(t, err)
	assert.Equal(t, 2, count)

	employees, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "EMP100", employees[0].ID)
	assert.Equal(t, "Bilal Raza", employees[1].Name)

	// A backup copy of the upload is kept.
	backups, err := os.ReadDir(filepath.Join(dataDir, "roster_uploads"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestRosterService_ReplaceFromCSV_MissingColumns(t *testing.T) {
	svc, _ := newTestRosterService(t)

	_, err := svc.ReplaceFromCSV(context.Background(), strings.NewReader("id,full_name\n1,Alice\n"))

	assert.ErrorIs(t, err, roster.ErrInvalidRoster)
}

func TestRosterService_ReplaceFromCSV_DuplicateIDs(t *testing.T) {
	svc, _ := newTestRosterService(t)

	upload := "Employee ID,Name\nEMP100,Alice Khan\nEMP100,Alice Again\n"
	_, err := svc.ReplaceFromCSV(context.Background(), strings.NewReader(upload))

	assert.ErrorIs(t, err, roster.ErrInvalidRoster)
}

func TestRosterService_ReplaceFromCSV_EmptyRows(t *testing.T) {
	svc, _ := newTestRosterService(t)

	_, err := svc.ReplaceFromCSV(context.Background(), strings.NewReader("Employee ID,Name\n"))

	assert.ErrorIs(t, err, roster.ErrInvalidRoster)
}
