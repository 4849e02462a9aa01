package attendance

import (
	"time"

	"github.com/registro/attendance-backend-go/internal/pkg/shiftclock"
)

// CheckType distinguishes entry from exit events. The numeric values are
// what the store persists.
type CheckType int

const (
	CheckEntry CheckType = 1
	CheckExit  CheckType = 2
)

const (
	// TimestampLayout is the wire form of full timestamps.
	TimestampLayout = "2006-01-02 15:04:05"
	// ClockLayout is the wall-clock form shown to the kiosk user.
	ClockLayout = "15:04"
)

// CheckEvent is one check-in or check-out. Append-only; never mutated.
type CheckEvent struct {
	ID         int64
	EmployeeID int64
	Type       CheckType
	CheckedAt  time.Time
}

// LatenessRecord is the signed minutes delta computed at check time, one per
// CheckEvent, immutable afterwards. Positive minutes mean late, negative
// early.
type LatenessRecord struct {
	ID         int64
	EmployeeID int64
	Type       CheckType
	Shift      shiftclock.Shift
	Date       time.Time
	Minutes    int
}

// LatenessRow is a LatenessRecord joined with the employee name, as the
// report range query returns it.
type LatenessRow struct {
	EmployeeName string
	Type         CheckType
	Shift        shiftclock.Shift
	Date         time.Time
	Minutes      int
}

// EmployeeRef identifies an employee in the kiosk listing queries.
type EmployeeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
