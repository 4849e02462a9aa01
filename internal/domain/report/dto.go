package report

import (
	"time"

	"github.com/registro/attendance-backend-go/internal/pkg/validator"
)

// ShiftEntry is one employee's presence in one shift: check-in time and
// delta, and the matching check-out once it happens. Out stays nil for an
// open entry.
type ShiftEntry struct {
	Name    string     `json:"name"`
	In      time.Time  `json:"in"`
	InLate  int        `json:"in_late"`
	Out     *time.Time `json:"out,omitempty"`
	OutLate int        `json:"out_late"`
}

// DayGroup holds one calendar day of the report, split into the two shift
// buckets. A day with data in only one shift keeps the other bucket empty.
type DayGroup struct {
	Date      time.Time    `json:"date"`
	Morning   []ShiftEntry `json:"morning"`
	Afternoon []ShiftEntry `json:"afternoon"`
}

// EmployeeTotals accumulates an employee's minutes over the whole range.
// Net is lateIn + earlyOut - earlyIn - lateOut: minutes the business lost.
type EmployeeTotals struct {
	Name     string `json:"name"`
	EarlyIn  int    `json:"early_in"`
	LateIn   int    `json:"late_in"`
	EarlyOut int    `json:"early_out"`
	LateOut  int    `json:"late_out"`
	Net      int    `json:"net"`
}

type RangeReport struct {
	Days   []DayGroup       `json:"days"`
	Totals []EmployeeTotals `json:"totals"`
}

type RangeRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed inclusive date bounds. Validate must have
// passed.
func (r *RangeRequest) Range() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type ExportResponse struct {
	FilePath  string `json:"file_path"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
