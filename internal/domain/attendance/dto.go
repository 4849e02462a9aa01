package attendance

import (
	"github.com/registro/attendance-backend-go/internal/pkg/validator"
)

type CheckRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckResponse reports the wall-clock time of a recorded check. Time is
// empty and AlreadyCheckedIn set when the check-in was a duplicate.
type CheckResponse struct {
	Time             string `json:"time,omitempty"`
	AlreadyCheckedIn bool   `json:"already_checked_in,omitempty"`
}
