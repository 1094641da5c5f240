package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID          string
	Username    string
	EmployeeID  string // badge number shown on the card, distinct from the row ID
	DeviceID    string
	Telephone   string
	JobTitle    string
	Department  string
	Branch      string
	Image       *string
	TimetableID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for display
	TimetableName *string
}

// MatchesSearch reports whether the employee matches a case-insensitive
// substring search across every field the directory table shows.
func (e Employee) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	fields := []string{
		e.Username,
		e.EmployeeID,
		e.DeviceID,
		e.Telephone,
		e.JobTitle,
		e.Department,
		e.Branch,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
