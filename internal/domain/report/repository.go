package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	// CountStatusesByDate tallies attendance records per status for one
	// calendar date.
	CountStatusesByDate(ctx context.Context, date time.Time) (map[string]int, error)

	CountEmployees(ctx context.Context) (int, error)
}
