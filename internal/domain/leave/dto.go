package leave

import (
	"github.com/attendo-app/attendo-backend-go/internal/pkg/validator"
)

// EmployeeRef mirrors the populated employeeId object the dashboard binds to.
type EmployeeRef struct {
	Username string  `json:"username"`
	Image    *string `json:"image,omitempty"`
}

type LeaveRequestResponse struct {
	ID          string      `json:"_id"`
	Employee    EmployeeRef `json:"employeeId"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	RequestDate string      `json:"requestDate"`
	Read        bool        `json:"read"`
}

func ToResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID: l.ID,
		Employee: EmployeeRef{
			Username: l.EmployeeName,
			Image:    l.EmployeeImage,
		},
		StartDate:   l.StartDate.Format("2006-01-02"),
		EndDate:     l.EndDate.Format("2006-01-02"),
		Type:        l.Type,
		Status:      l.Status,
		RequestDate: l.RequestDate.Format("2006-01-02"),
		Read:        l.Read,
	}
}

func ToResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, l := range requests {
		out = append(out, ToResponse(l))
	}
	return out
}

// Filter narrows the list: status client-side style, date range inclusive on
// ISO dates (from <= requestDate <= to).
type Filter struct {
	Status string `json:"status,omitempty"`
	From   string `json:"from,omitempty"` // YYYY-MM-DD
	To     string `json:"to,omitempty"`   // YYYY-MM-DD
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" {
		valid := []string{StatusPending, StatusApproved, StatusRejected}
		if !validator.IsInSlice(f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			})
		}
	}

	if f.From != "" {
		if _, valid := validator.IsValidDate(f.From); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}

	if f.To != "" {
		if _, valid := validator.IsValidDate(f.To); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != StatusApproved && r.Status != StatusRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
