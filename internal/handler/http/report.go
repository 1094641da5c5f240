package http

import (
	"log/slog"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/report"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
	exporter      Exporter
}

func NewReportHandler(reportService report.ReportService, exporter Exporter) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		exporter:      exporter,
	}
}

func rangeFilterFromRequest(r *http.Request) *report.RangeFilter {
	return &report.RangeFilter{
		EmployeeID: chi.URLParam(r, "employeeId"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.GetSummary(r.Context())
	if err != nil {
		slog.Error("Report summary error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Range implements ReportHandler.
func (h *ReportHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetRange(r.Context(), rangeFilterFromRequest(r))
	if err != nil {
		slog.Error("Report range error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	table, err := h.exporter.ReportTable(r.Context(), rangeFilterFromRequest(r))
	if err != nil {
		slog.Error("Report export error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, r, "report", table)
}
