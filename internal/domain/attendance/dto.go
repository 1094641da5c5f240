package attendance

import (
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/pkg/validator"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/view"
)

// AttendanceResponse carries both the raw timestamps and the derived display
// strings, so every consumer (table, chart, export) renders identically.
type AttendanceResponse struct {
	ID           string   `json:"_id"`
	EmployeeID   string   `json:"employeeId"`
	Username     string   `json:"username"`
	Image        *string  `json:"image,omitempty"`
	DeviceID     string   `json:"deviceID"`
	Date         string   `json:"date"`
	CheckInTime  *string  `json:"checkInTime,omitempty"`
	CheckOutTime *string  `json:"checkOutTime,omitempty"`
	IsLate       bool     `json:"isLate"`
	IsEarly      bool     `json:"isEarly"`
	Status       string   `json:"status"`
	HoursWorked  *float64 `json:"hoursWorked,omitempty"`
	ExtraHours   *float64 `json:"extraHours,omitempty"`

	// Derived display fields
	CheckInDisplay  string `json:"checkInDisplay"`
	CheckOutDisplay string `json:"checkOutDisplay"`
	Duration        string `json:"duration"`
	StatusLabel     string `json:"statusLabel"`
	BadgeClass      string `json:"badgeClass"`
}

// ToResponse derives the display fields from the raw record. Duration always
// comes from the raw timestamp pair, not from any stored hoursWorked figure;
// the two legacy screens disagreed on this and the raw pair is canonical.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		Username:        view.FallbackName(a.Username, ""),
		Image:           a.Image,
		DeviceID:        a.DeviceID,
		Date:            a.Date.Format("2006-01-02"),
		IsLate:          a.IsLate,
		IsEarly:         a.IsEarly,
		Status:          a.Status,
		HoursWorked:     a.HoursWorked,
		ExtraHours:      a.ExtraHours,
		CheckInDisplay:  view.Clock(a.CheckInTime),
		CheckOutDisplay: view.Clock(a.CheckOutTime),
		Duration:        view.Duration(a.CheckInTime, a.CheckOutTime),
		StatusLabel:     view.StatusLabel(a.Status),
		BadgeClass:      view.BadgeClass(a.Status),
	}
	if a.CheckInTime != nil {
		s := a.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &s
	}
	return resp
}

func ToResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, ToResponse(a))
	}
	return out
}

// DayFilter selects the single calendar day the attendance screen shows.
// Either an explicit date or a page offset back from today; date wins when
// both are present.
type DayFilter struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD
	Page int    `json:"page"`
}

func (f *DayFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		// Paging below today is clamped, never an error
		f.Page = 0
	}

	if f.Date != "" {
		if _, valid := validator.IsValidDate(f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TargetDate resolves the filter to a concrete YYYY-MM-DD string.
func (f *DayFilter) TargetDate(now time.Time) string {
	if f.Date != "" {
		return f.Date
	}
	return view.DateForPage(now, f.Page)
}

// UpdateAttendanceRequest is the edit-modal override: only checkOutTime and
// status may change, everything else stays server-owned.
type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	CheckOutTime *string `json:"checkOutTime,omitempty"` // RFC3339
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckOutTime == nil && r.Status == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of checkOutTime, status is required",
		})
	}

	if r.CheckOutTime != nil {
		if _, valid := validator.IsValidDateTime(*r.CheckOutTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "checkOutTime",
				Message: "checkOutTime must be an ISO8601 timestamp",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, KnownStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, onLeave, partial, leftEarly",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayResponse is what the date-paginated attendance screen consumes.
type DayResponse struct {
	Date    string               `json:"date"`
	Records []AttendanceResponse `json:"records"`
}

// OverallStats backs the dashboard stat cards.
type OverallStats struct {
	TotalEmployees int `json:"totalEmployees"`
	Present        int `json:"present"`
	Absent         int `json:"absent"`
	OnLeave        int `json:"onLeave"`
	Partial        int `json:"partial"`
}

// WeeklyStats backs the seven-day dashboard chart, oldest day first.
type WeeklyStats struct {
	Days []DayStats `json:"days"`
}

type DayStats struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	OnLeave int    `json:"onLeave"`
	Partial int    `json:"partial"`
}
