package timetable

import (
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/pkg/validator"
)

// TimetableRequest accepts the flat wire shape the form submits. Only the
// fields belonging to the selected shiftType are read when converting to the
// entity; everything else is structurally discarded, which is what prevents
// a stale single-shift window from riding along on a weekly submission.
type TimetableRequest struct {
	ID        string `json:"-"`
	Name      string `json:"name"`
	ShiftType string `json:"shiftType"`

	// single / split first window
	CheckInStart        string `json:"checkInStart,omitempty"`
	CheckInEnd          string `json:"checkInEnd,omitempty"`
	CheckOutStart       string `json:"checkOutStart,omitempty"`
	CheckOutEnd         string `json:"checkOutEnd,omitempty"`
	LateAllowance       int    `json:"lateAllowance,omitempty"`
	EarlyLeaveAllowance int    `json:"earlyLeaveAllowance,omitempty"`

	// split second window
	Shift2CheckInStart        string `json:"shift2CheckInStart,omitempty"`
	Shift2CheckInEnd          string `json:"shift2CheckInEnd,omitempty"`
	Shift2CheckOutStart       string `json:"shift2CheckOutStart,omitempty"`
	Shift2CheckOutEnd         string `json:"shift2CheckOutEnd,omitempty"`
	Shift2LateAllowance       int    `json:"shift2LateAllowance,omitempty"`
	Shift2EarlyLeaveAllowance int    `json:"shift2EarlyLeaveAllowance,omitempty"`

	// weekly
	WeeklySchedule map[string]DaySchedule `json:"weeklySchedule,omitempty"`

	WorkingDays []string `json:"workingDays,omitempty"`
}

var weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (r *TimetableRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.ShiftType, ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftType",
			Message: "shiftType must be one of: single, split, weekly",
		})
		return errs
	}

	checkWindow := func(prefix string, w Window) {
		clocks := map[string]string{
			prefix + "CheckInStart":  w.CheckInStart,
			prefix + "CheckInEnd":    w.CheckInEnd,
			prefix + "CheckOutStart": w.CheckOutStart,
			prefix + "CheckOutEnd":   w.CheckOutEnd,
		}
		for field, value := range clocks {
			if value == "" || !validator.IsValidClock(value) {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be a HH:MM clock value",
				})
			}
		}
		if w.LateAllowance < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "LateAllowance",
				Message: "lateAllowance must not be negative",
			})
		}
		if w.EarlyLeaveAllowance < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "EarlyLeaveAllowance",
				Message: "earlyLeaveAllowance must not be negative",
			})
		}
	}

	switch ShiftType(r.ShiftType) {
	case ShiftSingle:
		checkWindow("", r.firstWindow())
	case ShiftSplit:
		checkWindow("", r.firstWindow())
		checkWindow("shift2", r.secondWindow())
	case ShiftWeekly:
		if len(r.WeeklySchedule) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "weeklySchedule",
				Message: "weeklySchedule is required for weekly shifts",
			})
		}
		for day, sched := range r.WeeklySchedule {
			if !validator.IsInSlice(day, weekdays) {
				errs = append(errs, validator.ValidationError{
					Field:   "weeklySchedule." + day,
					Message: "unknown weekday",
				})
				continue
			}
			if !validator.IsValidClock(sched.CheckIn) || !validator.IsValidClock(sched.CheckOut) {
				errs = append(errs, validator.ValidationError{
					Field:   "weeklySchedule." + day,
					Message: "checkIn and checkOut must be HH:MM clock values",
				})
			}
		}
	}

	for _, day := range r.WorkingDays {
		if !validator.IsInSlice(day, weekdays) {
			errs = append(errs, validator.ValidationError{
				Field:   "workingDays",
				Message: "unknown weekday: " + day,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *TimetableRequest) firstWindow() Window {
	return Window{
		CheckInStart:        r.CheckInStart,
		CheckInEnd:          r.CheckInEnd,
		CheckOutStart:       r.CheckOutStart,
		CheckOutEnd:         r.CheckOutEnd,
		LateAllowance:       r.LateAllowance,
		EarlyLeaveAllowance: r.EarlyLeaveAllowance,
	}
}

func (r *TimetableRequest) secondWindow() Window {
	return Window{
		CheckInStart:        r.Shift2CheckInStart,
		CheckInEnd:          r.Shift2CheckInEnd,
		CheckOutStart:       r.Shift2CheckOutStart,
		CheckOutEnd:         r.Shift2CheckOutEnd,
		LateAllowance:       r.Shift2LateAllowance,
		EarlyLeaveAllowance: r.Shift2EarlyLeaveAllowance,
	}
}

// ToEntity builds the tagged union, keeping only the selected variant.
func (r *TimetableRequest) ToEntity() Timetable {
	t := Timetable{
		ID:   r.ID,
		Name: r.Name,
		Kind: ShiftType(r.ShiftType),
	}
	switch t.Kind {
	case ShiftSingle:
		t.Single = &SingleShift{
			Window:      r.firstWindow(),
			WorkingDays: r.WorkingDays,
		}
	case ShiftSplit:
		t.Split = &SplitShift{
			First:       r.firstWindow(),
			Second:      r.secondWindow(),
			WorkingDays: r.WorkingDays,
		}
	case ShiftWeekly:
		t.Weekly = &WeeklyShift{
			Schedule:    r.WeeklySchedule,
			WorkingDays: r.WorkingDays,
		}
	}
	return t
}

// TimetableResponse flattens the union back to the wire shape, emitting only
// the active variant's fields.
type TimetableResponse struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	ShiftType string `json:"shiftType"`

	CheckInStart        string `json:"checkInStart,omitempty"`
	CheckInEnd          string `json:"checkInEnd,omitempty"`
	CheckOutStart       string `json:"checkOutStart,omitempty"`
	CheckOutEnd         string `json:"checkOutEnd,omitempty"`
	LateAllowance       int    `json:"lateAllowance,omitempty"`
	EarlyLeaveAllowance int    `json:"earlyLeaveAllowance,omitempty"`

	Shift2CheckInStart        string `json:"shift2CheckInStart,omitempty"`
	Shift2CheckInEnd          string `json:"shift2CheckInEnd,omitempty"`
	Shift2CheckOutStart       string `json:"shift2CheckOutStart,omitempty"`
	Shift2CheckOutEnd         string `json:"shift2CheckOutEnd,omitempty"`
	Shift2LateAllowance       int    `json:"shift2LateAllowance,omitempty"`
	Shift2EarlyLeaveAllowance int    `json:"shift2EarlyLeaveAllowance,omitempty"`

	WeeklySchedule map[string]DaySchedule `json:"weeklySchedule,omitempty"`

	WorkingDays []string `json:"workingDays,omitempty"`
	CreatedAt   string   `json:"createdAt"`
}

func ToResponse(t Timetable) TimetableResponse {
	resp := TimetableResponse{
		ID:        t.ID,
		Name:      t.Name,
		ShiftType: string(t.Kind),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	switch t.Kind {
	case ShiftSingle:
		if t.Single != nil {
			w := t.Single.Window
			resp.CheckInStart = w.CheckInStart
			resp.CheckInEnd = w.CheckInEnd
			resp.CheckOutStart = w.CheckOutStart
			resp.CheckOutEnd = w.CheckOutEnd
			resp.LateAllowance = w.LateAllowance
			resp.EarlyLeaveAllowance = w.EarlyLeaveAllowance
			resp.WorkingDays = t.Single.WorkingDays
		}
	case ShiftSplit:
		if t.Split != nil {
			first := t.Split.First
			resp.CheckInStart = first.CheckInStart
			resp.CheckInEnd = first.CheckInEnd
			resp.CheckOutStart = first.CheckOutStart
			resp.CheckOutEnd = first.CheckOutEnd
			resp.LateAllowance = first.LateAllowance
			resp.EarlyLeaveAllowance = first.EarlyLeaveAllowance

			second := t.Split.Second
			resp.Shift2CheckInStart = second.CheckInStart
			resp.Shift2CheckInEnd = second.CheckInEnd
			resp.Shift2CheckOutStart = second.CheckOutStart
			resp.Shift2CheckOutEnd = second.CheckOutEnd
			resp.Shift2LateAllowance = second.LateAllowance
			resp.Shift2EarlyLeaveAllowance = second.EarlyLeaveAllowance
			resp.WorkingDays = t.Split.WorkingDays
		}
	case ShiftWeekly:
		if t.Weekly != nil {
			resp.WeeklySchedule = t.Weekly.Schedule
			resp.WorkingDays = t.Weekly.WorkingDays
		}
	}
	return resp
}

func ToResponses(timetables []Timetable) []TimetableResponse {
	out := make([]TimetableResponse, 0, len(timetables))
	for _, t := range timetables {
		out = append(out, ToResponse(t))
	}
	return out
}
