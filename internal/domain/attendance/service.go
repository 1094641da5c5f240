package attendance

import "context"

type AttendanceService interface {
	// GetDay returns one day's attendance, resolved from the date/page filter.
	GetDay(ctx context.Context, filter DayFilter) (DayResponse, error)

	// UpdateAttendance applies an edit-modal override.
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// GetOverall returns today's aggregate counts for the dashboard cards.
	GetOverall(ctx context.Context) (OverallStats, error)

	// GetWeekly returns per-day counts for the trailing seven days.
	GetWeekly(ctx context.Context) (WeeklyStats, error)
}
