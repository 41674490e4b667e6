package intake

import (
	"strings"
	"time"
)

// DetectionEvent is one reported sighting from the recognition producer,
// parsed from the exchange artifact. Untrusted input: every field except
// the identifiers is optional and may be garbage.
type DetectionEvent struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name,omitempty"`
	UniqueID   string `json:"unique_id"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// RejectReason classifies why an event was not accepted.
type RejectReason string

const (
	RejectNone              RejectReason = ""
	RejectMissingEmployeeID RejectReason = "missing_employee_id"
	RejectMissingUniqueID   RejectReason = "missing_unique_id"
	RejectDuplicateInBatch  RejectReason = "duplicate_in_batch"
	RejectAlreadyMarked     RejectReason = "already_marked"
	RejectStale             RejectReason = "stale"
)

// Validate checks the required identifiers and returns a typed rejection
// reason instead of an error: a rejected event is skipped, not fatal.
func (e DetectionEvent) Validate() RejectReason {
	if strings.TrimSpace(e.EmployeeID) == "" {
		return RejectMissingEmployeeID
	}
	if strings.TrimSpace(e.UniqueID) == "" {
		return RejectMissingUniqueID
	}
	return RejectNone
}

// ParsedTimestamp parses the optional ISO-8601 timestamp. The producer
// sometimes writes a trailing "Z" and sometimes a naive local time.
func (e DetectionEvent) ParsedTimestamp() (time.Time, bool) {
	if e.Timestamp == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, e.Timestamp); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
