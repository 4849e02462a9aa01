package attendance

import "context"

// RecorderService orchestrates check-ins and check-outs: it resolves the
// active shift window, enforces at most one open check-in per employee per
// window, and writes the event together with its lateness record.
type RecorderService interface {
	// CheckInOpening records the opening check-in for an owner or manager.
	// A no-op when the employee already checked in this window.
	CheckInOpening(ctx context.Context, employeeID int64) error

	// CheckInEmployee records an employee check-in and returns its
	// wall-clock time. Returns nil (and no error) when the employee is
	// already checked in this window.
	CheckInEmployee(ctx context.Context, employeeID int64) (*string, error)

	// CheckOut records a check-out and returns its wall-clock time. The
	// caller is responsible for only offering check-out to employees that
	// are checked in and not out.
	CheckOut(ctx context.Context, employeeID int64) (string, error)

	// CheckedInNotOut lists employees eligible for check-out right now.
	CheckedInNotOut(ctx context.Context) ([]EmployeeRef, error)

	// NotCheckedIn lists employees eligible for check-in right now.
	NotCheckedIn(ctx context.Context) ([]EmployeeRef, error)
}
