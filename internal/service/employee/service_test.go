package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/registro/attendance-backend-go/internal/domain/employee"
	"github.com/registro/attendance-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepository struct {
	employees []employee.Employee
	nextID    int64
}

func (f *fakeEmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = f.nextID
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepository) ListActive(_ context.Context, includeOwners bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.Deleted {
			continue
		}
		if emp.Role == employee.RoleOwner && !includeOwners {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepository) ListCredentialed(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if !emp.Deleted && emp.PasswordHash != nil {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepository) SoftDelete(_ context.Context, id int64) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees[i].Deleted = true
		}
	}
	return nil
}

func TestCreate_EmployeeRoleHasNoCredential(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "Dana",
		Role: "employee",
	})

	require.NoError(t, err)
	assert.Equal(t, employee.RoleEmployee, resp.Role)
	require.Len(t, repo.employees, 1)
	assert.Nil(t, repo.employees[0].PasswordHash)
}

func TestCreate_ManagerPasswordIsHashed(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:            "Mara",
		Role:            "manager",
		Password:        "secret-pw",
		ConfirmPassword: "secret-pw",
	})

	require.NoError(t, err)
	require.Len(t, repo.employees, 1)
	hash := repo.employees[0].PasswordHash
	require.NotNil(t, hash)
	assert.NotEqual(t, "secret-pw", *hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*hash), []byte("secret-pw")))
}

func TestCreate_OwnerRequiresDeveloperSession(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	req := employee.CreateEmployeeRequest{
		Name:            "Olga",
		Role:            "owner",
		Password:        "pw",
		ConfirmPassword: "pw",
	}

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrOwnerRequiresDev)
	assert.Empty(t, repo.employees)

	req.Developer = true
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.employees, 1)
}

func TestCreate_ValidationFailures(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	tests := []struct {
		name string
		req  employee.CreateEmployeeRequest
	}{
		{
			name: "missing name",
			req:  employee.CreateEmployeeRequest{Role: "employee"},
		},
		{
			name: "unknown role",
			req:  employee.CreateEmployeeRequest{Name: "Dana", Role: "intern"},
		},
		{
			name: "manager without password",
			req:  employee.CreateEmployeeRequest{Name: "Mara", Role: "manager"},
		},
		{
			name: "password mismatch",
			req: employee.CreateEmployeeRequest{
				Name:            "Mara",
				Role:            "manager",
				Password:        "one",
				ConfirmPassword: "two",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			var errs validator.ValidationErrors
			assert.ErrorAs(t, err, &errs)
			assert.Empty(t, repo.employees)
		})
	}
}

func TestListActive_FiltersOwnersUnlessRequested(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "Dana", Role: "employee",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "Olga", Role: "owner", Password: "pw", ConfirmPassword: "pw", Developer: true,
	})
	require.NoError(t, err)

	visible, err := svc.ListActive(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Dana", visible[0].Name)

	all, err := svc.ListActive(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDelete_RemovesFromListings(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name: "Dana", Role: "employee",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), resp.ID))
	require.NoError(t, svc.Delete(context.Background(), resp.ID))

	listed, err := svc.ListActive(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
