package report

import "context"

// ReportService produces the per-day/per-shift attendance report and its
// spreadsheet export.
type ReportService interface {
	// Range builds the nested report for an inclusive date range.
	Range(ctx context.Context, req RangeRequest) (RangeReport, error)

	// Export builds the range report and writes the two-sheet workbook to
	// the configured output location, returning the written path.
	Export(ctx context.Context, req RangeRequest) (ExportResponse, error)
}
