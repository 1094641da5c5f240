package attendance

import "time"

// Status values the server computes per employee per day. The client treats
// anything outside this set as unknown and renders the default badge.
const (
	StatusPresent         = "present"
	StatusAbsent          = "absent"
	StatusOnLeave         = "onLeave"
	StatusPartial         = "partial"
	StatusLeftEarly       = "leftEarly"
	StatusShiftNotStarted = "shiftNotStarted"
)

// KnownStatuses lists the values accepted on edit-modal overrides.
var KnownStatuses = []string{
	StatusPresent,
	StatusAbsent,
	StatusOnLeave,
	StatusPartial,
	StatusLeftEarly,
}

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	IsLate       bool
	IsEarly      bool
	Status       string
	HoursWorked  *float64
	ExtraHours   *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined employee display fields; any may be empty when the employee
	// record has been deleted out from under the attendance row.
	Username string
	Image    *string
	DeviceID string
}
