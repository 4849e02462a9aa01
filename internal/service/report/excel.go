package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/registro/attendance-backend-go/internal/domain/report"
)

const (
	sheetEntries = "EntryAndExits"
	sheetTotals  = "LateMinutes"

	dateLayout = "2006-01-02"
	cellLayout = "15:04"
)

// writeWorkbook renders the range report as a two-sheet workbook and saves
// it to path.
func writeWorkbook(path string, rangeReport report.RangeReport, spacing int) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	center, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	if err := writeEntrySheet(f, rangeReport.Days, spacing, center); err != nil {
		return err
	}
	if err := writeTotalsSheet(f, rangeReport.Totals, center); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// writeEntrySheet lays the days out side by side, three columns per day:
// employee name, check-in, check-out. The morning block sits under the date
// header; the afternoon block starts the configured number of rows below the
// longest morning block so the afternoon rows line up across days.
func writeEntrySheet(f *excelize.File, days []report.DayGroup, spacing int, center int) error {
	if _, err := f.NewSheet(sheetEntries); err != nil {
		return err
	}

	maxMorning := 0
	for _, day := range days {
		if len(day.Morning) > maxMorning {
			maxMorning = len(day.Morning)
		}
	}

	const headerRow = 3
	morningRow := headerRow + 1
	afternoonHeaderRow := morningRow + maxMorning + spacing
	afternoonRow := afternoonHeaderRow + 1

	if err := setCell(f, sheetEntries, 1, headerRow, "Morning"); err != nil {
		return err
	}
	if err := setCell(f, sheetEntries, 1, afternoonHeaderRow, "Afternoon"); err != nil {
		return err
	}

	for i, day := range days {
		col := i*3 + 2

		first, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(col+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetEntries, first, day.Date.Format(dateLayout)); err != nil {
			return err
		}
		if err := f.MergeCell(sheetEntries, first, last); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetEntries, first, last, center); err != nil {
			return err
		}

		if err := setCell(f, sheetEntries, col, 2, day.Date.Weekday().String()); err != nil {
			return err
		}

		for _, row := range []int{headerRow, afternoonHeaderRow} {
			if err := setCell(f, sheetEntries, col, row, "Employee:"); err != nil {
				return err
			}
			if err := setCell(f, sheetEntries, col+1, row, "In:"); err != nil {
				return err
			}
			if err := setCell(f, sheetEntries, col+2, row, "Out:"); err != nil {
				return err
			}
		}

		if err := writeShiftBlock(f, col, morningRow, day.Morning); err != nil {
			return err
		}
		if err := writeShiftBlock(f, col, afternoonRow, day.Afternoon); err != nil {
			return err
		}
	}

	return nil
}

func writeShiftBlock(f *excelize.File, col, row int, entries []report.ShiftEntry) error {
	for j, entry := range entries {
		if err := setCell(f, sheetEntries, col, row+j, entry.Name); err != nil {
			return err
		}
		in := fmt.Sprintf("%s (%+d)", entry.In.Format(cellLayout), entry.InLate)
		if err := setCell(f, sheetEntries, col+1, row+j, in); err != nil {
			return err
		}
		if entry.Out == nil {
			continue
		}
		out := fmt.Sprintf("%s (%+d)", entry.Out.Format(cellLayout), entry.OutLate)
		if err := setCell(f, sheetEntries, col+2, row+j, out); err != nil {
			return err
		}
	}
	return nil
}

func writeTotalsSheet(f *excelize.File, totals []report.EmployeeTotals, center int) error {
	if _, err := f.NewSheet(sheetTotals); err != nil {
		return err
	}

	headers := []string{"Employee", "Early In", "Late In", "Early Out", "Late Out", "Net"}
	for i, h := range headers {
		if err := setCell(f, sheetTotals, i+1, 1, h); err != nil {
			return err
		}
	}
	first, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetTotals, first, last, center); err != nil {
		return err
	}

	for i, t := range totals {
		row := i + 2
		if err := setCell(f, sheetTotals, 1, row, t.Name); err != nil {
			return err
		}
		for j, v := range []int{t.EarlyIn, t.LateIn, t.EarlyOut, t.LateOut, t.Net} {
			if err := setCell(f, sheetTotals, j+2, row, v); err != nil {
				return err
			}
		}
	}

	legend := []string{
		"All values are minutes.",
		"Net = Late In + Early Out - Early In - Late Out.",
		"A positive Net means time owed to the business.",
	}
	for i, line := range legend {
		if err := setCell(f, sheetTotals, 8, i+1, line); err != nil {
			return err
		}
	}

	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
