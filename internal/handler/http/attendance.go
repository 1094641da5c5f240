package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/attendo-app/attendo-backend-go/internal/domain/attendance"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetByDate(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Overall(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	exporter          Exporter
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, exporter Exporter) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		exporter:          exporter,
	}
}

func dayFilterFromQuery(r *http.Request) attendance.DayFilter {
	filter := attendance.DayFilter{
		Date: r.URL.Query().Get("date"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			filter.Page = n
		}
	}
	return filter
}

// GetByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	day, err := h.attendanceService.GetDay(r.Context(), dayFilterFromQuery(r))
	if err != nil {
		slog.Error("Attendance by date error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}

// Update implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.attendanceService.UpdateAttendance(r.Context(), updateReq)
	if err != nil {
		slog.Error("Attendance update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", updated)
}

// Overall implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Overall(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.GetOverall(r.Context())
	if err != nil {
		slog.Error("Attendance overall error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Weekly implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.GetWeekly(r.Context())
	if err != nil {
		slog.Error("Attendance weekly error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Export implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	table, err := h.exporter.AttendanceTable(r.Context(), dayFilterFromQuery(r))
	if err != nil {
		slog.Error("Attendance export error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, r, "attendance", table)
}
