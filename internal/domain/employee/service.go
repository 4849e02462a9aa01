package employee

import "context"

// EmployeeService defines the admin operations behind the add/select/delete
// employee screens.
type EmployeeService interface {
	// Create validates the request and inserts the employee. Credentialed
	// roles get their password hashed before any write happens.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListActive returns the active employees for selection lists.
	ListActive(ctx context.Context, includeOwners bool) ([]EmployeeResponse, error)

	// Delete soft-deletes an employee; historical records stay queryable.
	Delete(ctx context.Context, id int64) error
}
