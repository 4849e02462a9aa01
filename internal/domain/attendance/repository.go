package attendance

import (
	"context"
	"time"
)

// Ledger is the append-only store of check events and lateness records.
// Every windowed query takes the shift window bounds explicitly; the ledger
// never reads shift configuration itself.
type Ledger interface {
	// RecordCheck appends a check event together with its lateness record
	// in one atomic write, so a failure never leaves an event without its
	// record, and returns the event with its id. Fails with
	// ErrWriteConflict if either write affects no rows.
	RecordCheck(ctx context.Context, event CheckEvent, rec LatenessRecord) (CheckEvent, error)

	// CheckedInIDs returns the ids of employees with at least one entry
	// event inside the window.
	CheckedInIDs(ctx context.Context, start, end time.Time) ([]int64, error)

	// CheckedInNotOut returns employees with an entry but no exit inside
	// the window.
	CheckedInNotOut(ctx context.Context, start, end time.Time) ([]EmployeeRef, error)

	// NotCheckedIn returns active non-owner employees with no entry event
	// inside the window.
	NotCheckedIn(ctx context.Context, start, end time.Time) ([]EmployeeRef, error)

	// FirstOpenerTime returns the earliest entry by an owner or manager
	// inside the window. Fails with ErrNoOpener if there is none.
	FirstOpenerTime(ctx context.Context, start, end time.Time) (time.Time, error)

	// LatenessInRange returns lateness rows joined with employee names for
	// all records dated within [start, end], ordered by date ascending.
	// Fails with ErrNoRecords when the result is empty.
	LatenessInRange(ctx context.Context, start, end time.Time) ([]LatenessRow, error)
}
