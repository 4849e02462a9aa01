package employee

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/registro/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepository employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	role, err := employee.ParseRole(req.Role)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if role == employee.RoleOwner && !req.Developer {
		return employee.EmployeeResponse{}, employee.ErrOwnerRequiresDev
	}

	emp := employee.Employee{
		Name: req.Name,
		Role: role,
	}
	if role.CanHoldCredential() {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		emp.PasswordHash = &hashed
	}

	created, err := s.employeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// ListActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context, includeOwners bool) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepository.ListActive(ctx, includeOwners)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.employeeRepository.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
