package employee

import (
	"github.com/registro/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty"`

	// Developer marks the request as coming from a developer session,
	// which is the only context allowed to create owner accounts.
	Developer bool `json:"developer,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	role, err := ParseRole(r.Role)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: ErrInvalidRole.Error(),
		})
	}

	if err == nil && role.CanHoldCredential() {
		if validator.IsEmpty(r.Password) {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password is required for owner and manager roles",
			})
		}
		if r.Password != r.ConfirmPassword {
			errs = append(errs, validator.ValidationError{
				Field:   "confirm_password",
				Message: "passwords do not match",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:   emp.ID,
		Name: emp.Name,
		Role: emp.Role,
	}
}
