package attendance

import (
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	// EntryTime is an optional explicit "HH:MM" entry time for manual or test
	// entries. When blank the service uses its clock.
	EntryTime string `json:"entry_time,omitempty"`

	// At overrides the entry time programmatically (detection intake). Takes
	// precedence over EntryTime.
	At time.Time `json:"-"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.EntryTime != "" {
		if _, valid := validator.IsValidClock(r.EntryTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "entry_time",
				Message: "entry_time must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	EntryTime  string `json:"entry_time"`
	Status     string `json:"status"`
}

func NewRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		EmployeeID: r.EmployeeID,
		Name:       r.Name,
		Date:       r.Date.Format(DateLayout),
		EntryTime:  r.EntryTime.Format(TimeLayout),
		Status:     string(r.Status),
	}
}

type ClearResponse struct {
	Date    string `json:"date"`
	Removed int    `json:"removed"`
}
