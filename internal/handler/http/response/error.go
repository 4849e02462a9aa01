package response

import (
	"errors"
	"net/http"

	"github.com/registro/attendance-backend-go/internal/domain/attendance"
	"github.com/registro/attendance-backend-go/internal/domain/auth"
	"github.com/registro/attendance-backend-go/internal/domain/employee"
	"github.com/registro/attendance-backend-go/internal/domain/report"
	"github.com/registro/attendance-backend-go/internal/pkg/validator"
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

	// Employee domain errors
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrOwnerRequiresDev):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeConflict):
		Conflict(w, "Employee write conflicted with another change")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoOpener):
		NotFound(w, "No owner or manager has opened this shift yet")
	case errors.Is(err, attendance.ErrNoRecords):
		NotFound(w, "No attendance records in the requested range")
	case errors.Is(err, attendance.ErrWriteConflict):
		Conflict(w, "Attendance write conflicted with another change")

	// Report domain errors
	case errors.Is(err, report.ErrUnmatchedExit):
		InternalServerError(w, "Attendance data is inconsistent")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
