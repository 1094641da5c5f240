package report

import (
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/domain/attendance"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/validator"
)

// SummaryResponse feeds the stat cards on the reports screen.
type SummaryResponse struct {
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	OnLeave        int `json:"onLeave"`
	Partial        int `json:"partial"`
	TotalEmployees int `json:"totalEmployees"`
	TotalRecords   int `json:"totalRecords"`
}

type RangeFilter struct {
	EmployeeID string
	From       string
	To         string
}

func (f *RangeFilter) Validate() (time.Time, time.Time, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	from, fromOK := validator.IsValidDate(f.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(f.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return from, to, nil
}

// RangeResponse is the per-employee report over an inclusive date range.
type RangeResponse struct {
	EmployeeID string                          `json:"employeeId"`
	Username   string                          `json:"username"`
	From       string                          `json:"from"`
	To         string                          `json:"to"`
	Summary    SummaryResponse                 `json:"summary"`
	Records    []attendance.AttendanceResponse `json:"records"`
}
