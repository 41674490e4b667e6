package attendance

import "errors"

// Attendance domain errors
var (
	// ErrAlreadyMarked means a record already exists for this employee today.
	// Expected and non-fatal; the caller reports it as a no-op.
	ErrAlreadyMarked = errors.New("employee already marked attendance today")

	ErrRecordNotFound = errors.New("attendance record not found")
)
