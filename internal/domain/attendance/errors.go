package attendance

import "errors"

var (
	// ErrNoOpener means no owner or manager has checked in during the
	// current shift window yet; latecomers cannot be graded until one has.
	ErrNoOpener = errors.New("no opening check-in found for the current shift")

	// ErrNoRecords means a lateness range query matched nothing.
	ErrNoRecords = errors.New("no attendance records found for the date range")

	// ErrWriteConflict means an insert affected no rows.
	ErrWriteConflict = errors.New("attendance write affected no rows")
)
