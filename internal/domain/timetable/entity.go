package timetable

import "time"

type ShiftType string

const (
	ShiftSingle ShiftType = "single"
	ShiftSplit  ShiftType = "split"
	ShiftWeekly ShiftType = "weekly"
)

var ShiftTypeValues = []string{
	string(ShiftSingle),
	string(ShiftSplit),
	string(ShiftWeekly),
}

// Window is one check-in/check-out span with its grace allowances in minutes.
type Window struct {
	CheckInStart        string `json:"checkInStart"`
	CheckInEnd          string `json:"checkInEnd"`
	CheckOutStart       string `json:"checkOutStart"`
	CheckOutEnd         string `json:"checkOutEnd"`
	LateAllowance       int    `json:"lateAllowance"`
	EarlyLeaveAllowance int    `json:"earlyLeaveAllowance"`
}

// DaySchedule is one weekday's check-in/check-out pair for weekly shifts.
type DaySchedule struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type SingleShift struct {
	Window      Window
	WorkingDays []string
}

type SplitShift struct {
	First       Window
	Second      Window
	WorkingDays []string
}

type WeeklyShift struct {
	Schedule    map[string]DaySchedule
	WorkingDays []string
}

// Timetable is a tagged union over the three shift shapes. Exactly one of
// Single/Split/Weekly is non-nil, selected by Kind; switching kind replaces
// the variant wholesale so stale fields from a previous shape cannot survive.
type Timetable struct {
	ID        string
	Name      string
	Kind      ShiftType
	Single    *SingleShift
	Split     *SplitShift
	Weekly    *WeeklyShift
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkingDays returns the working-day set of whichever variant is active.
func (t Timetable) WorkingDays() []string {
	switch t.Kind {
	case ShiftSingle:
		if t.Single != nil {
			return t.Single.WorkingDays
		}
	case ShiftSplit:
		if t.Split != nil {
			return t.Split.WorkingDays
		}
	case ShiftWeekly:
		if t.Weekly != nil {
			return t.Weekly.WorkingDays
		}
	}
	return nil
}
