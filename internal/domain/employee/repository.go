package employee

import "context"

// EmployeeRepository defines data access for the employees table.
type EmployeeRepository interface {
	// Create inserts a new employee and returns it with its assigned id.
	// Fails with ErrEmployeeConflict if the insert affects no rows.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// ListActive returns non-deleted employees ordered by id. Owner rows
	// are included only when includeOwners is set (developer views).
	ListActive(ctx context.Context, includeOwners bool) ([]Employee, error)

	// ListCredentialed returns non-deleted employees with a password hash.
	ListCredentialed(ctx context.Context) ([]Employee, error)

	// SoftDelete marks an employee deleted. Idempotent; an absent or
	// already-deleted id is not an error.
	SoftDelete(ctx context.Context, id int64) error
}
