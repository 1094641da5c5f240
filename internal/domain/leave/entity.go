package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveRequest struct {
	ID          string
	EmployeeID  string
	StartDate   time.Time
	EndDate     time.Time
	Type        string
	Status      string
	RequestDate time.Time
	Read        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined employee display fields
	EmployeeName  string
	EmployeeImage *string
}

// CanTransitionTo enforces the one-directional state machine: only pending
// requests move, and only to approved or rejected.
func (l LeaveRequest) CanTransitionTo(status string) bool {
	if l.Status != StatusPending {
		return false
	}
	return status == StatusApproved || status == StatusRejected
}
