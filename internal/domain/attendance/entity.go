package attendance

import (
	"time"
)

// Layouts shared with the producer and the report consumers. The exchange
// producer and the legacy dashboard both use day/month/year dates and
// minute-granular entry times, so the ledger keeps the same formats.
const (
	DateLayout  = "02/01/2006"
	TimeLayout  = "15:04"
	MonthLayout = "January_2006"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

// Record is one attendance row. At most one record exists per
// (EmployeeID, Date) pair; that invariant is enforced at write time.
type Record struct {
	EmployeeID string
	Name       string
	Date       time.Time
	EntryTime  time.Time
	Status     Status
}

// DateKey returns the day-granular date string used for duplicate checks.
func (r Record) DateKey() string {
	return r.Date.Format(DateLayout)
}

// Month identifies one ledger partition.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Key returns the partition naming key, e.g. "January_2006".
func (m Month) Key() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(MonthLayout)
}
