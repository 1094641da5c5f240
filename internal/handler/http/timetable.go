package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/timetable"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimetableHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Employees(w http.ResponseWriter, r *http.Request)
}

type TimetableHandlerImpl struct {
	timetableService timetable.TimetableService
}

func NewTimetableHandler(timetableService timetable.TimetableService) TimetableHandler {
	return &TimetableHandlerImpl{timetableService: timetableService}
}

// List implements TimetableHandler.
func (h *TimetableHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	timetables, err := h.timetableService.List(r.Context())
	if err != nil {
		slog.Error("Timetable list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timetables)
}

// Create implements TimetableHandler.
func (h *TimetableHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq timetable.TimetableRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.timetableService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Timetable create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timetable created", created)
}

// Update implements TimetableHandler.
func (h *TimetableHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq timetable.TimetableRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.timetableService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Timetable update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timetable updated", updated)
}

// Delete implements TimetableHandler.
func (h *TimetableHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.timetableService.Delete(r.Context(), id); err != nil {
		slog.Error("Timetable delete error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timetable deleted", nil)
}

// Employees implements TimetableHandler.
func (h *TimetableHandlerImpl) Employees(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	employees, err := h.timetableService.Employees(r.Context(), id)
	if err != nil {
		slog.Error("Timetable employees error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
