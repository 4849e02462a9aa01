package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/registro/attendance-backend-go/internal/domain/attendance"
	"github.com/registro/attendance-backend-go/internal/pkg/shiftclock"
)

// RecorderServiceImpl records check events against the active shift window.
// The state machine per (employee, window) is NotCheckedIn -> CheckedIn ->
// CheckedOut; a repeated entry within the window is a no-op, never an error.
type RecorderServiceImpl struct {
	ledger attendance.Ledger
	clock  shiftclock.Clock
	now    func() time.Time
}

func NewRecorderService(ledger attendance.Ledger, clock shiftclock.Clock) attendance.RecorderService {
	return &RecorderServiceImpl{
		ledger: ledger,
		clock:  clock,
		now:    time.Now,
	}
}

// CheckInOpening implements attendance.RecorderService. The opener is always
// graded against the configured entry time, never against another opener.
func (s *RecorderServiceImpl) CheckInOpening(ctx context.Context, employeeID int64) error {
	now := s.now()

	checkedIn, err := s.isCheckedIn(ctx, now, employeeID)
	if err != nil {
		return err
	}
	if checkedIn {
		return nil
	}

	if _, err := s.recordEntry(ctx, now, employeeID, s.clock.ScheduledEntry(now)); err != nil {
		return err
	}
	return nil
}

// CheckInEmployee implements attendance.RecorderService. Latecomers are
// graded against the actual opening time once the shift has opened; before
// the scheduled entry time, the schedule itself is the target.
func (s *RecorderServiceImpl) CheckInEmployee(ctx context.Context, employeeID int64) (*string, error) {
	now := s.now()

	checkedIn, err := s.isCheckedIn(ctx, now, employeeID)
	if err != nil {
		return nil, err
	}
	if checkedIn {
		// Duplicate within the window: signal "already checked in"
		// distinctly from failure.
		return nil, nil
	}

	target := s.clock.ScheduledEntry(now)
	if !s.clock.BeforeScheduledEntry(now) {
		start, end := s.clock.Window(now)
		openedAt, err := s.ledger.FirstOpenerTime(ctx, start, end)
		if err != nil {
			// ErrNoOpener propagates: nobody has opened the shift,
			// so the arrival cannot be graded yet.
			return nil, err
		}
		target = shiftclock.TimeOfDayOf(openedAt)
	}

	formatted, err := s.recordEntry(ctx, now, employeeID, target)
	if err != nil {
		return nil, err
	}
	return &formatted, nil
}

// CheckOut implements attendance.RecorderService.
func (s *RecorderServiceImpl) CheckOut(ctx context.Context, employeeID int64) (string, error) {
	now := s.now()

	event := attendance.CheckEvent{
		EmployeeID: employeeID,
		Type:       attendance.CheckExit,
		CheckedAt:  now,
	}
	rec := attendance.LatenessRecord{
		EmployeeID: employeeID,
		Type:       attendance.CheckExit,
		Shift:      s.clock.ActiveShift(now),
		Date:       now,
		Minutes:    s.clock.MinutesDelta(now, s.clock.ScheduledExit(now)),
	}
	if _, err := s.ledger.RecordCheck(ctx, event, rec); err != nil {
		return "", fmt.Errorf("failed to record check-out: %w", err)
	}

	return now.Format(attendance.ClockLayout), nil
}

// CheckedInNotOut implements attendance.RecorderService.
func (s *RecorderServiceImpl) CheckedInNotOut(ctx context.Context) ([]attendance.EmployeeRef, error) {
	start, end := s.clock.Window(s.now())
	refs, err := s.ledger.CheckedInNotOut(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list checked-in-not-out employees: %w", err)
	}
	return refs, nil
}

// NotCheckedIn implements attendance.RecorderService.
func (s *RecorderServiceImpl) NotCheckedIn(ctx context.Context) ([]attendance.EmployeeRef, error) {
	start, end := s.clock.Window(s.now())
	refs, err := s.ledger.NotCheckedIn(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list not-checked-in employees: %w", err)
	}
	return refs, nil
}

func (s *RecorderServiceImpl) isCheckedIn(ctx context.Context, now time.Time, employeeID int64) (bool, error) {
	start, end := s.clock.Window(now)
	ids, err := s.ledger.CheckedInIDs(ctx, start, end)
	if err != nil {
		return false, fmt.Errorf("failed to query checked-in employees: %w", err)
	}
	for _, id := range ids {
		if id == employeeID {
			return true, nil
		}
	}
	return false, nil
}

// recordEntry appends the entry event and its lateness record as one atomic
// write, graded against target, and returns the event's wall-clock time.
func (s *RecorderServiceImpl) recordEntry(ctx context.Context, now time.Time, employeeID int64, target shiftclock.TimeOfDay) (string, error) {
	event := attendance.CheckEvent{
		EmployeeID: employeeID,
		Type:       attendance.CheckEntry,
		CheckedAt:  now,
	}
	rec := attendance.LatenessRecord{
		EmployeeID: employeeID,
		Type:       attendance.CheckEntry,
		Shift:      s.clock.ActiveShift(now),
		Date:       now,
		Minutes:    s.clock.MinutesDelta(now, target),
	}
	if _, err := s.ledger.RecordCheck(ctx, event, rec); err != nil {
		return "", fmt.Errorf("failed to record check-in: %w", err)
	}

	return now.Format(attendance.ClockLayout), nil
}
