package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/leave"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	exporter     Exporter
}

func NewLeaveHandler(leaveService leave.LeaveService, exporter Exporter) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
		exporter:     exporter,
	}
}

func leaveFilterFromQuery(r *http.Request) leave.Filter {
	return leave.Filter{
		Status: r.URL.Query().Get("status"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.List(r.Context(), leaveFilterFromQuery(r))
	if err != nil {
		slog.Error("Leave list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		slog.Error("Leave pending error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var updateReq leave.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.leaveService.UpdateStatus(r.Context(), updateReq)
	if err != nil {
		slog.Error("Leave update status error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated", updated)
}

// MarkRead implements LeaveHandler.
func (h *LeaveHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.MarkRead(r.Context(), id); err != nil {
		slog.Error("Leave mark read error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request marked as read", nil)
}

// Export implements LeaveHandler.
func (h *LeaveHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	table, err := h.exporter.LeaveTable(r.Context(), leaveFilterFromQuery(r))
	if err != nil {
		slog.Error("Leave export error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, r, "leave-requests", table)
}
