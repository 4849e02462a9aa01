package shiftclock

import (
	"fmt"
	"time"
)

// Shift is one of the two daily work periods, separated by the configured
// change time.
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// TimeOfDay is a wall-clock time without a date, as configured in "HH:mm"
// settings.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an "HH:mm" value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// TimeOfDayOf extracts the wall-clock component of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// Minutes returns the total minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// On places the time of day on the calendar date of day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Clock resolves shift windows and lateness deltas against a fixed set of
// configured boundary times. It carries no ambient state: the current moment
// is always an explicit argument, so callers (and tests) control time.
type Clock struct {
	ChangeTime     TimeOfDay
	MorningEntry   TimeOfDay
	MorningExit    TimeOfDay
	AfternoonEntry TimeOfDay
	AfternoonExit  TimeOfDay
}

// IsBeforeChangeTime reports whether now's time of day is strictly before the
// change-time boundary. A moment exactly at the boundary belongs to the
// afternoon shift.
func (c Clock) IsBeforeChangeTime(now time.Time) bool {
	return minutesOfDay(now) < c.ChangeTime.Minutes()
}

// ActiveShift returns the shift that now falls into.
func (c Clock) ActiveShift(now time.Time) Shift {
	if c.IsBeforeChangeTime(now) {
		return ShiftMorning
	}
	return ShiftAfternoon
}

// Window returns the bounds of the shift window now falls into: midnight to
// change time for the morning, change time to 23:59 for the afternoon. The
// bounds are used to scope all "today's events" queries.
func (c Clock) Window(now time.Time) (start, end time.Time) {
	midnight := TimeOfDay{}.On(now)
	change := c.ChangeTime.On(now)
	if c.IsBeforeChangeTime(now) {
		return midnight, change
	}
	return change, TimeOfDay{Hour: 23, Minute: 59}.On(now)
}

// MinutesDelta returns the signed distance in minutes between now's time of
// day and target. Positive means late, negative early.
func (c Clock) MinutesDelta(now time.Time, target TimeOfDay) int {
	return minutesOfDay(now) - target.Minutes()
}

// ScheduledEntry returns the configured entry time for the active shift. It
// is the grading target for opening check-ins, and for employee check-ins
// that happen before it.
func (c Clock) ScheduledEntry(now time.Time) TimeOfDay {
	if c.IsBeforeChangeTime(now) {
		return c.MorningEntry
	}
	return c.AfternoonEntry
}

// ScheduledExit returns the configured exit time for the active shift.
// Check-outs are always graded against the schedule, never against the
// opener.
func (c Clock) ScheduledExit(now time.Time) TimeOfDay {
	if c.IsBeforeChangeTime(now) {
		return c.MorningExit
	}
	return c.AfternoonExit
}

// BeforeScheduledEntry reports whether now precedes the active shift's
// configured entry time. Arrivals before it are graded against the schedule;
// arrivals after it are graded against whoever opened the shift.
func (c Clock) BeforeScheduledEntry(now time.Time) bool {
	return minutesOfDay(now) < c.ScheduledEntry(now).Minutes()
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
