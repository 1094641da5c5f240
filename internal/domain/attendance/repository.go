package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ListByDate returns every record for one calendar date, joined with the
	// employee display fields.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)
	Update(ctx context.Context, record Attendance) error

	// CountByStatus tallies records per status for one calendar date.
	CountByStatus(ctx context.Context, date time.Time) (map[string]int, error)

	// ListRange returns one employee's records within [from, to] inclusive,
	// oldest first.
	ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
