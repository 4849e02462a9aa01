package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registro/attendance-backend-go/internal/domain/attendance"
	"github.com/registro/attendance-backend-go/internal/pkg/shiftclock"
)

// fakeLedger keeps events and lateness records in memory and answers the
// window queries the recorder needs. A non-nil failErr makes RecordCheck
// fail without recording anything, like a rolled-back transaction.
type fakeLedger struct {
	events   []attendance.CheckEvent
	lateness []attendance.LatenessRecord
	openerAt *time.Time
	nextID   int64
	failErr  error
}

func (f *fakeLedger) RecordCheck(_ context.Context, event attendance.CheckEvent, rec attendance.LatenessRecord) (attendance.CheckEvent, error) {
	if f.failErr != nil {
		return attendance.CheckEvent{}, f.failErr
	}
	f.nextID++
	event.ID = f.nextID
	f.events = append(f.events, event)
	f.lateness = append(f.lateness, rec)
	return event, nil
}

func (f *fakeLedger) CheckedInIDs(_ context.Context, start, end time.Time) ([]int64, error) {
	var ids []int64
	for _, ev := range f.events {
		if ev.Type == attendance.CheckEntry && !ev.CheckedAt.Before(start) && !ev.CheckedAt.After(end) {
			ids = append(ids, ev.EmployeeID)
		}
	}
	return ids, nil
}

func (f *fakeLedger) CheckedInNotOut(_ context.Context, _, _ time.Time) ([]attendance.EmployeeRef, error) {
	return nil, nil
}

func (f *fakeLedger) NotCheckedIn(_ context.Context, _, _ time.Time) ([]attendance.EmployeeRef, error) {
	return nil, nil
}

func (f *fakeLedger) FirstOpenerTime(_ context.Context, _, _ time.Time) (time.Time, error) {
	if f.openerAt == nil {
		return time.Time{}, attendance.ErrNoOpener
	}
	return *f.openerAt, nil
}

func (f *fakeLedger) LatenessInRange(_ context.Context, _, _ time.Time) ([]attendance.LatenessRow, error) {
	return nil, attendance.ErrNoRecords
}

func (f *fakeLedger) entriesFor(employeeID int64) int {
	n := 0
	for _, ev := range f.events {
		if ev.EmployeeID == employeeID && ev.Type == attendance.CheckEntry {
			n++
		}
	}
	return n
}

func testClock() shiftclock.Clock {
	return shiftclock.Clock{
		ChangeTime:     shiftclock.TimeOfDay{Hour: 13},
		MorningEntry:   shiftclock.TimeOfDay{Hour: 8},
		MorningExit:    shiftclock.TimeOfDay{Hour: 13},
		AfternoonEntry: shiftclock.TimeOfDay{Hour: 13},
		AfternoonExit:  shiftclock.TimeOfDay{Hour: 21},
	}
}

func newTestRecorder(ledger *fakeLedger, now time.Time) *RecorderServiceImpl {
	return &RecorderServiceImpl{
		ledger: ledger,
		clock:  testClock(),
		now:    func() time.Time { return now },
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 11, hour, minute, 0, 0, time.Local)
}

func TestCheckInEmployee_BeforeSchedule_GradedAgainstSchedule(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestRecorder(ledger, at(7, 50))

	formatted, err := svc.CheckInEmployee(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, formatted)
	assert.Equal(t, "07:50", *formatted)
	require.Len(t, ledger.lateness, 1)
	assert.Equal(t, -10, ledger.lateness[0].Minutes)
	assert.Equal(t, shiftclock.ShiftMorning, ledger.lateness[0].Shift)
	assert.Equal(t, attendance.CheckEntry, ledger.lateness[0].Type)
}

func TestCheckInEmployee_AfterSchedule_GradedAgainstOpener(t *testing.T) {
	openedAt := at(8, 5)
	ledger := &fakeLedger{openerAt: &openedAt}
	svc := newTestRecorder(ledger, at(8, 20))

	formatted, err := svc.CheckInEmployee(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, formatted)
	require.Len(t, ledger.lateness, 1)
	// 08:20 against the 08:05 opening, not the 08:00 schedule
	assert.Equal(t, 15, ledger.lateness[0].Minutes)
}

func TestCheckInEmployee_NoOpenerYet(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestRecorder(ledger, at(8, 20))

	_, err := svc.CheckInEmployee(context.Background(), 7)

	assert.ErrorIs(t, err, attendance.ErrNoOpener)
	assert.Empty(t, ledger.lateness)
}

func TestCheckInEmployee_DuplicateIsNoOp(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestRecorder(ledger, at(7, 30))

	first, err := svc.CheckInEmployee(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.CheckInEmployee(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, second)

	assert.Equal(t, 1, ledger.entriesFor(7))
	assert.Len(t, ledger.lateness, 1)
}

func TestCheckInOpening_AlreadyCheckedInIsNoOp(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestRecorder(ledger, at(7, 45))

	require.NoError(t, svc.CheckInOpening(context.Background(), 1))
	require.NoError(t, svc.CheckInOpening(context.Background(), 1))

	assert.Equal(t, 1, ledger.entriesFor(1))
	assert.Len(t, ledger.lateness, 1)
}

func TestCheckInOpening_GradedAgainstSchedule(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestRecorder(ledger, at(8, 10))

	require.NoError(t, svc.CheckInOpening(context.Background(), 1))

	require.Len(t, ledger.lateness, 1)
	assert.Equal(t, 10, ledger.lateness[0].Minutes)
}

func TestCheckOut_GradedAgainstScheduledExit(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestRecorder(ledger, at(12, 45))

	formatted, err := svc.CheckOut(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "12:45", formatted)
	require.Len(t, ledger.lateness, 1)
	// Left 15 minutes before the 13:00 morning exit
	assert.Equal(t, -15, ledger.lateness[0].Minutes)
	assert.Equal(t, attendance.CheckExit, ledger.lateness[0].Type)
}

func TestCheckOut_AfternoonShiftLabel(t *testing.T) {
	ledger := &fakeLedger{}
	svc := newTestRecorder(ledger, at(21, 30))

	_, err := svc.CheckOut(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, ledger.lateness, 1)
	assert.Equal(t, shiftclock.ShiftAfternoon, ledger.lateness[0].Shift)
	assert.Equal(t, 30, ledger.lateness[0].Minutes)
}

func TestCheckInEmployee_FailedWriteDoesNotBlockRetry(t *testing.T) {
	ledger := &fakeLedger{failErr: errors.New("connection reset")}
	svc := newTestRecorder(ledger, at(7, 50))

	_, err := svc.CheckInEmployee(context.Background(), 7)
	require.Error(t, err)

	// The failed attempt must leave no trace: an orphan entry event would
	// make this retry report "already checked in" and lose the lateness
	// record for good.
	assert.Equal(t, 0, ledger.entriesFor(7))
	assert.Empty(t, ledger.lateness)

	ledger.failErr = nil
	formatted, err := svc.CheckInEmployee(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, formatted)
	assert.Equal(t, 1, ledger.entriesFor(7))
	assert.Len(t, ledger.lateness, 1)
}

func TestCheckInEmployee_WindowsAreIndependentAcrossShifts(t *testing.T) {
	ledger := &fakeLedger{}

	morning := newTestRecorder(ledger, at(7, 30))
	first, err := morning.CheckInEmployee(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Same employee, afternoon window: the morning entry does not block it.
	openedAt := at(13, 10)
	ledger.openerAt = &openedAt
	afternoon := newTestRecorder(ledger, at(14, 0))

	second, err := afternoon.CheckInEmployee(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 2, ledger.entriesFor(7))
}
