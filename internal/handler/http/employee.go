package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	exporter        Exporter
}

func NewEmployeeHandler(employeeService employee.EmployeeService, exporter Exporter) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		exporter:        exporter,
	}
}

const maxUploadSize = 10 << 20

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	employees, err := h.employeeService.List(r.Context(), search)
	if err != nil {
		slog.Error("Employee list error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Employee get error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var createReq employee.CreateEmployeeRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		createReq.File = file
		createReq.FileHeader = header
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Employee create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", created)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	var updateReq employee.UpdateEmployeeRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		updateReq.File = file
		updateReq.FileHeader = header
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Employee update error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Employee delete error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// Export implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	table, err := h.exporter.EmployeeTable(r.Context(), search)
	if err != nil {
		slog.Error("Employee export error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeExport(w, r, "employees", table)
}
