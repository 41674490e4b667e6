package report

// DailySummary counts records by status for one date.
type DailySummary struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
	Leave   int    `json:"leave"`
	Total   int    `json:"total"`
}

// EmployeeMonthlySummary is one roster employee's month, zero rows included.
// TotalLeave counts recorded Leave statuses; TotalLeaves is the derived
// statistic (every two late arrivals convert to one leave unit).
type EmployeeMonthlySummary struct {
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	TotalPresent int    `json:"total_present"`
	TotalLate    int    `json:"total_late"`
	TotalAbsent  int    `json:"total_absent"`
	TotalLeave   int    `json:"total_leave"`
	TotalEntries int    `json:"total_entries"`
	TotalLeaves  int    `json:"total_leaves"`
}

// MonthlyReport is the per-employee monthly projection for the active month.
type MonthlyReport struct {
	Month       string                   `json:"month"`
	GeneratedAt string                   `json:"generated_at"`
	Employees   []EmployeeMonthlySummary `json:"employees"`
}
