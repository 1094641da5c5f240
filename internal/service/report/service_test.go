package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendo-app/attendo-backend-go/internal/domain/attendance"
	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
	"github.com/attendo-app/attendo-backend-go/internal/domain/report"
)

type fakeReportRepository struct {
	countedDates []time.Time
}

func (f *fakeReportRepository) CountStatusesByDate(ctx context.Context, date time.Time) (map[string]int, error) {
	f.countedDates = append(f.countedDates, date)
	return map[string]int{
		attendance.StatusPresent: 6,
		attendance.StatusAbsent:  2,
		attendance.StatusPartial: 1,
	}, nil
}

func (f *fakeReportRepository) CountEmployees(ctx context.Context) (int, error) {
	return 12, nil
}

type fakeAttendanceRepository struct{}

func (fakeAttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (fakeAttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (fakeAttendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	return nil
}

func (fakeAttendanceRepository) CountByStatus(ctx context.Context, date time.Time) (map[string]int, error) {
	return map[string]int{}, nil
}

func (fakeAttendanceRepository) ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeEmployeeRepository struct{}

func (fakeEmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (fakeEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return nil, nil
}

func (fakeEmployeeRepository) List(ctx context.Context, search string) ([]employee.Employee, error) {
	return nil, nil
}

func (fakeEmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	return nil
}

func (fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (fakeEmployeeRepository) ListByTimetable(ctx context.Context, timetableID string) ([]employee.Employee, error) {
	return nil, nil
}

func TestGetSummaryCountsDisplayDay(t *testing.T) {
	// 22:30 UTC is already the next calendar day in Nairobi.
	now := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)
	repo := &fakeReportRepository{}

	svc := NewReportService(repo, fakeAttendanceRepository{}, fakeEmployeeRepository{}).(*ReportServiceImpl)
	svc.now = func() time.Time { return now }

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.countedDates, 1)
	assert.Equal(t, "2025-06-11", repo.countedDates[0].Format("2006-01-02"))

	assert.Equal(t, &report.SummaryResponse{
		Present:        6,
		Absent:         2,
		Partial:        1,
		TotalEmployees: 12,
		TotalRecords:   9,
	}, summary)
}
