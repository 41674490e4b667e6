package response

import (
	"errors"
	"net/http"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/auth"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Roster domain errors
	case errors.Is(err, roster.ErrEmployeeNotFound):
		NotFound(w, "Employee not found in roster")
	case errors.Is(err, roster.ErrInvalidRoster):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
