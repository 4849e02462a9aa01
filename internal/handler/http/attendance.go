package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/registro/attendance-backend-go/internal/domain/attendance"
	"github.com/registro/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	PendingOut(w http.ResponseWriter, r *http.Request)
	NotCheckedIn(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	recorderService attendance.RecorderService
}

func NewAttendanceHandler(recorderService attendance.RecorderService) AttendanceHandler {
	return &attendanceHandlerImpl{
		recorderService: recorderService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCheckRequest(w, r)
	if !ok {
		return
	}

	checkedAt, err := h.recorderService.CheckInEmployee(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if checkedAt == nil {
		response.SuccessWithMessage(w, "Already checked in this shift", attendance.CheckResponse{
			AlreadyCheckedIn: true,
		})
		return
	}

	response.Success(w, attendance.CheckResponse{Time: *checkedAt})
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCheckRequest(w, r)
	if !ok {
		return
	}

	checkedAt, err := h.recorderService.CheckOut(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.CheckResponse{Time: checkedAt})
}

// PendingOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) PendingOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.recorderService.CheckedInNotOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// NotCheckedIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) NotCheckedIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.recorderService.NotCheckedIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func decodeCheckRequest(w http.ResponseWriter, r *http.Request) (attendance.CheckRequest, bool) {
	var req attendance.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return attendance.CheckRequest{}, false
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return attendance.CheckRequest{}, false
	}
	return req, true
}
