package report

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/registro/attendance-backend-go/internal/config"
	"github.com/registro/attendance-backend-go/internal/domain/attendance"
	"github.com/registro/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	ledger attendance.Ledger
	export config.ExportConfig
}

func NewReportService(ledger attendance.Ledger, export config.ExportConfig) report.ReportService {
	return &ReportServiceImpl{
		ledger: ledger,
		export: export,
	}
}

// Range implements report.ReportService.
func (s *ReportServiceImpl) Range(ctx context.Context, req report.RangeRequest) (report.RangeReport, error) {
	if err := req.Validate(); err != nil {
		return report.RangeReport{}, err
	}

	start, end := req.Range()
	rows, err := s.ledger.LatenessInRange(ctx, start, end)
	if err != nil {
		return report.RangeReport{}, err
	}

	days, err := groupByDay(rows)
	if err != nil {
		return report.RangeReport{}, err
	}

	return report.RangeReport{
		Days:   days,
		Totals: accumulateTotals(days),
	}, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.RangeRequest) (report.ExportResponse, error) {
	rangeReport, err := s.Range(ctx, req)
	if err != nil {
		return report.ExportResponse{}, err
	}

	path := filepath.Join(s.export.OutputDirectory, s.export.OutputFileName+".xlsx")
	if err := writeWorkbook(path, rangeReport, s.export.SpaceBetweenTurns); err != nil {
		return report.ExportResponse{}, fmt.Errorf("failed to write report workbook: %w", err)
	}

	return report.ExportResponse{
		FilePath:  path,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, nil
}
