package intake

// Outcome is the per-event result of a batch. Failures are isolated here
// rather than aborting the batch.
type Outcome struct {
	EmployeeID string       `json:"employee_id,omitempty"`
	UniqueID   string       `json:"unique_id,omitempty"`
	Accepted   bool         `json:"accepted"`
	Reason     RejectReason `json:"reason,omitempty"`
	Message    string       `json:"message"`
}

// BatchResult aggregates one ProcessBatch invocation.
type BatchResult struct {
	Accepted int       `json:"accepted"`
	Outcomes []Outcome `json:"outcomes"`
	Message  string    `json:"message"`
}

// ExchangeStatus describes the exchange artifact as seen on disk.
type ExchangeStatus struct {
	Exists     bool   `json:"exists"`
	Size       int64  `json:"size"`
	ModifiedAt string `json:"modified_at,omitempty"`
}
