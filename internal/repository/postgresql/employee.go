package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/registro/attendance-backend-go/internal/domain/employee"
	"github.com/registro/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (name, position, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, emp.Name, string(emp.Role), emp.PasswordHash).Scan(&emp.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeConflict
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context, includeOwners bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, position, password_hash, deleted
		FROM employees
		WHERE deleted = FALSE
		  AND position IN ($1, $2)
		ORDER BY id
	`
	args := []interface{}{string(employee.RoleManager), string(employee.RoleEmployee)}
	if includeOwners {
		query = `
			SELECT id, name, position, password_hash, deleted
			FROM employees
			WHERE deleted = FALSE
			  AND position IN ($1, $2, $3)
			ORDER BY id
		`
		args = append(args, string(employee.RoleOwner))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// ListCredentialed implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListCredentialed(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, position, password_hash, deleted
		FROM employees
		WHERE password_hash IS NOT NULL
		  AND deleted = FALSE
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentialed employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// SoftDelete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	// Idempotent: deleting an absent or already-deleted employee is fine.
	query := `UPDATE employees SET deleted = TRUE WHERE id = $1`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to soft delete employee %d: %w", id, err)
	}

	return nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var (
			emp  employee.Employee
			role string
		)
		if err := rows.Scan(&emp.ID, &emp.Name, &role, &emp.PasswordHash, &emp.Deleted); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emp.Role = employee.Role(role)
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
