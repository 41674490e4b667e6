package attendance

import (
	"fmt"
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
)

// Classifier maps an entry time to Present or Late. Absent and Leave are
// never produced here; those come from administrative entry and the monthly
// leave derivation.
type Classifier struct {
	officeStartMinutes int
	graceMinutes       int
}

// NewClassifier builds a classifier from an "HH:MM" office start and a grace
// period. Both bounds are inclusive: arriving exactly at the grace limit is
// still on time.
func NewClassifier(officeStart string, gracePeriod time.Duration) (Classifier, error) {
	start, err := time.Parse(attendance.TimeLayout, officeStart)
	if err != nil {
		return Classifier{}, fmt.Errorf("invalid office start %q: %w", officeStart, err)
	}
	return Classifier{
		officeStartMinutes: start.Hour()*60 + start.Minute(),
		graceMinutes:       int(gracePeriod.Minutes()),
	}, nil
}

// Classify is total and side-effect free; only the time of day matters.
func (c Classifier) Classify(entry time.Time) attendance.Status {
	minutes := entry.Hour()*60 + entry.Minute()
	if minutes <= c.officeStartMinutes {
		return attendance.StatusPresent
	}
	if minutes <= c.officeStartMinutes+c.graceMinutes {
		// Grace period still counts as present.
		return attendance.StatusPresent
	}
	return attendance.StatusLate
}
