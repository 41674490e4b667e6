package fixtures

import "github.com/msnglobalit/attendance-backend-go/internal/domain/roster"

// DefaultRoster is served until an administrator uploads a roster file.
func DefaultRoster() []roster.Employee {
	return []roster.Employee{
		{ID: "MSN001", Name: "Ramsha Tariq"},
		{ID: "MSN002", Name: "Tehreem Siddiqui"},
		{ID: "MSN003", Name: "Rayyan Ahmad"},
		{ID: "MSN004", Name: "Maryam Sheikh"},
		{ID: "MSN005", Name: "Samreen Fatima"},
		{ID: "MSN006", Name: "Taskeen Abbas"},
		{ID: "MSN007", Name: "Muhammad Shaf"},
		{ID: "MSN009", Name: "Hammad Hassan"},
	}
}
