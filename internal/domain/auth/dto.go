package auth

import (
	"github.com/registro/attendance-backend-go/internal/domain/employee"
	"github.com/registro/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	EmployeeID int64         `json:"employee_id"`
	Name       string        `json:"name"`
	Role       employee.Role `json:"role"`
}
