package employee

import (
	"mime/multipart"
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest carries the add-employee modal fields. The photo
// arrives as a multipart file alongside the JSON "data" field.
type CreateEmployeeRequest struct {
	Username    string  `json:"username"`
	EmployeeID  string  `json:"employeeID"`
	DeviceID    string  `json:"deviceID"`
	Telephone   string  `json:"telephone"`
	JobTitle    string  `json:"jobTitle"`
	Department  string  `json:"department"`
	Branch      string  `json:"branch"`
	TimetableID *string `json:"timetable,omitempty"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"username":   r.Username,
		"employeeID": r.EmployeeID,
		"deviceID":   r.DeviceID,
		"telephone":  r.Telephone,
		"jobTitle":   r.JobTitle,
		"department": r.Department,
		"branch":     r.Branch,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if r.FileHeader != nil && r.FileHeader.Size > 10<<20 {
		errs = append(errs, validator.ValidationError{
			Field:   "image",
			Message: "employee photo size must not exceed 10MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Username    *string `json:"username,omitempty"`
	EmployeeID  *string `json:"employeeID,omitempty"`
	DeviceID    *string `json:"deviceID,omitempty"`
	Telephone   *string `json:"telephone,omitempty"`
	JobTitle    *string `json:"jobTitle,omitempty"`
	Department  *string `json:"department,omitempty"`
	Branch      *string `json:"branch,omitempty"`
	TimetableID *string `json:"timetable,omitempty"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	optional := map[string]*string{
		"username":   r.Username,
		"employeeID": r.EmployeeID,
		"deviceID":   r.DeviceID,
		"telephone":  r.Telephone,
		"jobTitle":   r.JobTitle,
		"department": r.Department,
		"branch":     r.Branch,
	}
	for field, value := range optional {
		if value != nil && validator.IsEmpty(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be blank",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse uses the wire field names the dashboard already binds to,
// `_id` included.
type EmployeeResponse struct {
	ID            string  `json:"_id"`
	Username      string  `json:"username"`
	EmployeeID    string  `json:"employeeID"`
	DeviceID      string  `json:"deviceID"`
	Telephone     string  `json:"telephone"`
	JobTitle      string  `json:"jobTitle"`
	Department    string  `json:"department"`
	Branch        string  `json:"branch"`
	Image         *string `json:"image,omitempty"`
	TimetableID   *string `json:"timetable,omitempty"`
	TimetableName *string `json:"timetableName,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Username:      e.Username,
		EmployeeID:    e.EmployeeID,
		DeviceID:      e.DeviceID,
		Telephone:     e.Telephone,
		JobTitle:      e.JobTitle,
		Department:    e.Department,
		Branch:        e.Branch,
		Image:         e.Image,
		TimetableID:   e.TimetableID,
		TimetableName: e.TimetableName,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}
