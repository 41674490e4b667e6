package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/database"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, EnsureLedgerSchema(ctx, db))
	require.NoError(t, EnsureRosterSchema(ctx, db))
	_, err = db.Exec(ctx, "TRUNCATE TABLE attendance_records")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE TABLE employees")
	require.NoError(t, err)
	return db
}

func TestLedgerRepository_SaveAndLoadPartition(t *testing.T) {
	db := testDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	month := attendance.Month{Year: 2026, Month: time.March}
	at := time.Date(2026, time.March, 9, 8, 45, 0, 0, time.Local)
	saved := []attendance.Record{
		{EmployeeID: "MSN001", Name: "Ramsha Tariq", Date: at, EntryTime: at, Status: attendance.StatusPresent},
		{EmployeeID: "MSN002", Name: "Tehreem Siddiqui", Date: at, EntryTime: at.Add(40 * time.Minute), Status: attendance.StatusLate},
	}
	require.NoError(t, repo.SavePartition(ctx, month, saved))

	loaded, err := repo.LoadPartition(ctx, month)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "MSN001", loaded[0].EmployeeID)
	assert.Equal(t, "09/03/2026", loaded[0].DateKey())
	assert.Equal(t, attendance.StatusLate, loaded[1].Status)

	// A rewrite replaces the partition wholesale.
	require.NoError(t, repo.SavePartition(ctx, month, saved[:1]))
	loaded, err = repo.LoadPartition(ctx, month)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestLedgerRepository_LoadPartition_Empty(t *testing.T) {
	db := testDB(t)
	repo := NewLedgerRepository(db)

	loaded, err := repo.LoadPartition(context.Background(), attendance.Month{Year: 2026, Month: time.July})

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRosterRepository_ReplaceAndLookup(t *testing.T) {
	db := testDB(t)
	repo := NewRosterRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, []roster.Employee{
		{ID: "MSN001", Name: "Ramsha Tariq"},
		{ID: "MSN002", Name: "Tehreem Siddiqui"},
	}))

	employees, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "MSN001", employees[0].ID)

	emp, err := repo.GetByID(ctx, "MSN002")
	require.NoError(t, err)
	assert.Equal(t, "Tehreem Siddiqui", emp.Name)

	_, err = repo.GetByID(ctx, "MSN999")
	assert.ErrorIs(t, err, roster.ErrEmployeeNotFound)
}
