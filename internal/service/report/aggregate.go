package report

import (
	"time"

	"github.com/registro/attendance-backend-go/internal/domain/attendance"
	"github.com/registro/attendance-backend-go/internal/domain/report"
	"github.com/registro/attendance-backend-go/internal/pkg/shiftclock"
)

// groupByDay folds the date-ordered lateness rows into per-day, per-shift
// groups. Entries and exits are paired by employee name within a day and
// shift; pairing does not depend on row order inside the day, so entries are
// collected first and exits matched after.
func groupByDay(rows []attendance.LatenessRow) ([]report.DayGroup, error) {
	var days []report.DayGroup
	for start := 0; start < len(rows); {
		end := start
		for end < len(rows) && sameDay(rows[start].Date, rows[end].Date) {
			end++
		}

		day, err := buildDay(rows[start:end])
		if err != nil {
			return nil, err
		}
		days = append(days, day)
		start = end
	}
	return days, nil
}

func buildDay(rows []attendance.LatenessRow) (report.DayGroup, error) {
	day := report.DayGroup{Date: dateOf(rows[0].Date)}

	for _, row := range rows {
		if row.Type != attendance.CheckEntry {
			continue
		}
		entry := report.ShiftEntry{
			Name:   row.EmployeeName,
			In:     row.Date,
			InLate: row.Minutes,
		}
		if row.Shift == shiftclock.ShiftMorning {
			day.Morning = append(day.Morning, entry)
		} else {
			day.Afternoon = append(day.Afternoon, entry)
		}
	}

	for _, row := range rows {
		if row.Type != attendance.CheckExit {
			continue
		}
		bucket := day.Afternoon
		if row.Shift == shiftclock.ShiftMorning {
			bucket = day.Morning
		}
		if !closeEntry(bucket, row) {
			return report.DayGroup{}, report.ErrUnmatchedExit
		}
	}

	return day, nil
}

// closeEntry fills the first still-open entry with the exit row's name.
func closeEntry(bucket []report.ShiftEntry, row attendance.LatenessRow) bool {
	for i := range bucket {
		if bucket[i].Name == row.EmployeeName && bucket[i].Out == nil {
			out := row.Date
			bucket[i].Out = &out
			bucket[i].OutLate = row.Minutes
			return true
		}
	}
	return false
}

// accumulateTotals sums each employee's minutes over the whole range, in
// order of first appearance. Net is the minutes the business lost: arriving
// late and leaving early count against the employee, arriving early and
// staying late count in their favor.
func accumulateTotals(days []report.DayGroup) []report.EmployeeTotals {
	var totals []report.EmployeeTotals
	index := make(map[string]int)

	add := func(entries []report.ShiftEntry) {
		for _, e := range entries {
			i, ok := index[e.Name]
			if !ok {
				i = len(totals)
				index[e.Name] = i
				totals = append(totals, report.EmployeeTotals{Name: e.Name})
			}

			if e.InLate >= 0 {
				totals[i].LateIn += e.InLate
			} else {
				totals[i].EarlyIn += -e.InLate
			}
			if e.Out != nil {
				if e.OutLate >= 0 {
					totals[i].LateOut += e.OutLate
				} else {
					totals[i].EarlyOut += -e.OutLate
				}
			}
		}
	}

	for _, day := range days {
		add(day.Morning)
		add(day.Afternoon)
	}

	for i := range totals {
		t := &totals[i]
		t.Net = t.LateIn + t.EarlyOut - t.EarlyIn - t.LateOut
	}
	return totals
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
