package shiftclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClock() Clock {
	return Clock{
		ChangeTime:     TimeOfDay{Hour: 13},
		MorningEntry:   TimeOfDay{Hour: 8},
		MorningExit:    TimeOfDay{Hour: 13},
		AfternoonEntry: TimeOfDay{Hour: 13},
		AfternoonExit:  TimeOfDay{Hour: 21},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 11, hour, minute, 0, 0, time.Local)
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"08:00", TimeOfDay{Hour: 8}, false},
		{"13:30", TimeOfDay{Hour: 13, Minute: 30}, false},
		{"23:59", TimeOfDay{Hour: 23, Minute: 59}, false},
		{"24:00", TimeOfDay{}, true},
		{"8am", TimeOfDay{}, true},
		{"", TimeOfDay{}, true},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.input)
		if c.wantErr {
			assert.Error(t, err, "input %q", c.input)
			continue
		}
		require.NoError(t, err, "input %q", c.input)
		assert.Equal(t, c.want, got)
	}
}

func TestActiveShift(t *testing.T) {
	clock := testClock()

	cases := []struct {
		now  time.Time
		want Shift
	}{
		{at(0, 0), ShiftMorning},
		{at(8, 0), ShiftMorning},
		{at(12, 59), ShiftMorning},
		{at(13, 0), ShiftAfternoon}, // boundary is exclusive for morning
		{at(13, 1), ShiftAfternoon},
		{at(23, 59), ShiftAfternoon},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, clock.ActiveShift(c.now), "at %v", c.now)
	}
}

func TestWindow(t *testing.T) {
	clock := testClock()

	start, end := clock.Window(at(9, 30))
	assert.Equal(t, at(0, 0), start)
	assert.Equal(t, at(13, 0), end)

	start, end = clock.Window(at(15, 0))
	assert.Equal(t, at(13, 0), start)
	assert.Equal(t, at(23, 59), end)

	// start < end holds on both sides of the boundary
	for _, now := range []time.Time{at(0, 0), at(12, 59), at(13, 0), at(23, 59)} {
		start, end := clock.Window(now)
		assert.True(t, start.Before(end), "window at %v", now)
	}
}

func TestMinutesDelta(t *testing.T) {
	clock := testClock()
	target := TimeOfDay{Hour: 8}

	assert.Equal(t, 0, clock.MinutesDelta(at(8, 0), target))
	assert.Equal(t, 10, clock.MinutesDelta(at(8, 10), target))
	assert.Equal(t, -10, clock.MinutesDelta(at(7, 50), target))
}

func TestScheduledTargets(t *testing.T) {
	clock := testClock()

	assert.Equal(t, clock.MorningEntry, clock.ScheduledEntry(at(7, 0)))
	assert.Equal(t, clock.AfternoonEntry, clock.ScheduledEntry(at(14, 0)))
	assert.Equal(t, clock.MorningExit, clock.ScheduledExit(at(12, 0)))
	assert.Equal(t, clock.AfternoonExit, clock.ScheduledExit(at(20, 0)))
}

func TestBeforeScheduledEntry(t *testing.T) {
	clock := testClock()

	assert.True(t, clock.BeforeScheduledEntry(at(7, 50)))
	assert.False(t, clock.BeforeScheduledEntry(at(8, 0)))
	assert.False(t, clock.BeforeScheduledEntry(at(8, 10)))
	// afternoon side uses the afternoon entry target
	assert.False(t, clock.BeforeScheduledEntry(at(13, 0)))
	assert.False(t, clock.BeforeScheduledEntry(at(14, 0)))
}

func TestTimeOfDayOn(t *testing.T) {
	day := at(16, 45)
	placed := TimeOfDay{Hour: 8, Minute: 15}.On(day)
	assert.Equal(t, at(8, 15), placed)
}
