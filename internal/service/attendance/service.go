package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/domain/attendance"
	"github.com/attendo-app/attendo-backend-go/internal/domain/report"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/view"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	report.ReportRepository

	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, reportRepository report.ReportRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		ReportRepository:     reportRepository,
		now:                  time.Now,
	}
}

// GetDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDay(ctx context.Context, filter attendance.DayFilter) (attendance.DayResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	target := filter.TargetDate(s.now())
	date, err := time.Parse("2006-01-02", target)
	if err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to parse target date: %w", err)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return attendance.DayResponse{
		Date:    target,
		Records: attendance.ToResponses(records),
	}, nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckOutTime != nil {
		checkOut, err := time.Parse(time.RFC3339, *req.CheckOutTime)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse checkOutTime: %w", err)
		}
		record.CheckOutTime = &checkOut

		if record.CheckInTime != nil {
			hours := checkOut.Sub(*record.CheckInTime).Hours()
			record.HoursWorked = &hours
		}
	}

	if req.Status != nil {
		record.Status = *req.Status
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	updated, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}

// GetOverall implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetOverall(ctx context.Context) (attendance.OverallStats, error) {
	today := view.Today(s.now())

	var stats attendance.OverallStats
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.ReportRepository.CountEmployees(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		stats.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		counts, err := s.AttendanceRepository.CountByStatus(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to count today's attendance: %w", err)
		}
		stats.Present = counts[attendance.StatusPresent]
		stats.Absent = counts[attendance.StatusAbsent]
		stats.OnLeave = counts[attendance.StatusOnLeave]
		stats.Partial = counts[attendance.StatusPartial]
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.OverallStats{}, err
	}

	return stats, nil
}

// GetWeekly implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWeekly(ctx context.Context) (attendance.WeeklyStats, error) {
	today := view.Today(s.now())

	days := make([]attendance.DayStats, 7)
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < 7; i++ {
		i := i
		date := today.AddDate(0, 0, i-6)
		g.Go(func() error {
			counts, err := s.AttendanceRepository.CountByStatus(gCtx, date)
			if err != nil {
				return fmt.Errorf("failed to count attendance for %s: %w", date.Format("2006-01-02"), err)
			}
			mu.Lock()
			days[i] = attendance.DayStats{
				Date:    date.Format("2006-01-02"),
				Present: counts[attendance.StatusPresent],
				Absent:  counts[attendance.StatusAbsent],
				OnLeave: counts[attendance.StatusOnLeave],
				Partial: counts[attendance.StatusPartial],
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return attendance.WeeklyStats{}, err
	}

	return attendance.WeeklyStats{Days: days}, nil
}
