package http

import (
	"net/http"

	"github.com/registro/attendance-backend-go/internal/domain/report"
	"github.com/registro/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Range(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Range implements ReportHandler.
func (h *reportHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	req := rangeRequestFromQuery(r)

	result, err := h.reportService.Range(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := rangeRequestFromQuery(r)

	result, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report exported", result)
}

func rangeRequestFromQuery(r *http.Request) report.RangeRequest {
	return report.RangeRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}
