package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendo-app/attendo-backend-go/internal/domain/attendance"
)

// fakeAttendanceRepository records the dates queries are issued for so day
// derivation can be asserted.
type fakeAttendanceRepository struct {
	listedDates  []time.Time
	countedDates []time.Time
}

func (f *fakeAttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	f.listedDates = append(f.listedDates, date)
	return nil, nil
}

func (f *fakeAttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepository) CountByStatus(ctx context.Context, date time.Time) (map[string]int, error) {
	f.countedDates = append(f.countedDates, date)
	return map[string]int{attendance.StatusPresent: 1}, nil
}

func (f *fakeAttendanceRepository) ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeReportRepository struct{}

func (fakeReportRepository) CountStatusesByDate(ctx context.Context, date time.Time) (map[string]int, error) {
	return map[string]int{}, nil
}

func (fakeReportRepository) CountEmployees(ctx context.Context) (int, error) {
	return 10, nil
}

func newServiceAt(repo *fakeAttendanceRepository, now time.Time) attendance.AttendanceService {
	svc := NewAttendanceService(repo, fakeReportRepository{}).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetDayAndOverallAgreeAcrossUTCBoundary(t *testing.T) {
	// 22:30 UTC is 01:30 the next day in Nairobi, so the two calendars
	// disagree about which date "today" is.
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)
	repo := &fakeAttendanceRepository{}
	svc := newServiceAt(repo, now)
	ctx := context.Background()

	day, err := svc.GetDay(ctx, attendance.DayFilter{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", day.Date)

	_, err = svc.GetOverall(ctx)
	require.NoError(t, err)
	require.Len(t, repo.countedDates, 1)
	assert.Equal(t, "2025-06-11", repo.countedDates[0].Format("2006-01-02"))
}

func TestGetWeeklyEndsOnDisplayDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)
	repo := &fakeAttendanceRepository{}
	svc := newServiceAt(repo, now)

	weekly, err := svc.GetWeekly(context.Background())
	require.NoError(t, err)
	require.Len(t, weekly.Days, 7)
	assert.Equal(t, "2025-06-05", weekly.Days[0].Date)
	assert.Equal(t, "2025-06-11", weekly.Days[6].Date)
}

func TestGetOverallCounts(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc := newServiceAt(&fakeAttendanceRepository{}, now)

	stats, err := svc.GetOverall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalEmployees)
	assert.Equal(t, 1, stats.Present)
}
