package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/registro/attendance-backend-go/internal/domain/attendance"
	"github.com/registro/attendance-backend-go/internal/domain/auth"
	"github.com/registro/attendance-backend-go/internal/domain/employee"
)

type AuthServiceImpl struct {
	employeeRepository employee.EmployeeRepository
	recorderService    attendance.RecorderService
}

func NewAuthService(employeeRepository employee.EmployeeRepository, recorderService attendance.RecorderService) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepository: employeeRepository,
		recorderService:    recorderService,
	}
}

// Login implements auth.AuthService. The login form carries no username, so
// the password is matched against every credentialed employee in turn.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	candidates, err := s.employeeRepository.ListCredentialed(ctx)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to load credentialed employees: %w", err)
	}

	for _, emp := range candidates {
		if emp.PasswordHash == nil {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)) != nil {
			continue
		}

		if err := s.recorderService.CheckInOpening(ctx, emp.ID); err != nil {
			return auth.LoginResponse{}, err
		}
		return auth.LoginResponse{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Role:       emp.Role,
		}, nil
	}

	return auth.LoginResponse{}, auth.ErrInvalidCredentials
}
