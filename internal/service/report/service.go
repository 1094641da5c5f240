package report

import (
	"context"
	"fmt"
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/domain/attendance"
	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
	"github.com/attendo-app/attendo-backend-go/internal/domain/report"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/view"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	report.ReportRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewReportService(reportRepository report.ReportRepository, attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:     reportRepository,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		now:                  time.Now,
	}
}

// GetSummary implements report.ReportService.
func (s *ReportServiceImpl) GetSummary(ctx context.Context) (*report.SummaryResponse, error) {
	today := view.Today(s.now())

	var summary report.SummaryResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.ReportRepository.CountStatusesByDate(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to count attendance statuses: %w", err)
		}
		summary.Present = counts[attendance.StatusPresent]
		summary.Absent = counts[attendance.StatusAbsent]
		summary.OnLeave = counts[attendance.StatusOnLeave]
		summary.Partial = counts[attendance.StatusPartial]
		for _, c := range counts {
			summary.TotalRecords += c
		}
		return nil
	})

	g.Go(func() error {
		total, err := s.ReportRepository.CountEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		summary.TotalEmployees = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &summary, nil
}

// GetRange implements report.ReportService.
func (s *ReportServiceImpl) GetRange(ctx context.Context, filter *report.RangeFilter) (*report.RangeResponse, error) {
	from, to, err := filter.Validate()
	if err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListRange(ctx, filter.EmployeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}

	var summary report.SummaryResponse
	summary.TotalRecords = len(records)
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusOnLeave:
			summary.OnLeave++
		case attendance.StatusPartial:
			summary.Partial++
		}
	}

	return &report.RangeResponse{
		EmployeeID: emp.ID,
		Username:   emp.Username,
		From:       filter.From,
		To:         filter.To,
		Summary:    summary,
		Records:    attendance.ToResponses(records),
	}, nil
}
