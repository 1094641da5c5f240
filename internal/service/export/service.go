package export

import (
	"context"
	"fmt"
	"strconv"

	"github.com/attendo-app/attendo-backend-go/internal/domain/attendance"
	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
	"github.com/attendo-app/attendo-backend-go/internal/domain/leave"
	"github.com/attendo-app/attendo-backend-go/internal/domain/report"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/export"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/view"
)

// ExportService builds one export.Table per feature. Every format renders
// the same table, so the PDF, the workbook, and the CSV can never disagree
// on row counts or cell contents.
type ExportService interface {
	AttendanceTable(ctx context.Context, filter attendance.DayFilter) (export.Table, error)
	EmployeeTable(ctx context.Context, search string) (export.Table, error)
	LeaveTable(ctx context.Context, filter leave.Filter) (export.Table, error)
	ReportTable(ctx context.Context, filter *report.RangeFilter) (export.Table, error)
}

type ExportServiceImpl struct {
	attendance attendance.AttendanceService
	employees  employee.EmployeeService
	leaves     leave.LeaveService
	reports    report.ReportService
}

func NewExportService(attendanceService attendance.AttendanceService, employeeService employee.EmployeeService, leaveService leave.LeaveService, reportService report.ReportService) ExportService {
	return &ExportServiceImpl{
		attendance: attendanceService,
		employees:  employeeService,
		leaves:     leaveService,
		reports:    reportService,
	}
}

func hoursCell(h *float64) string {
	if h == nil {
		return "-"
	}
	return strconv.FormatFloat(*h, 'f', 2, 64)
}

// AttendanceTable implements ExportService.
func (s *ExportServiceImpl) AttendanceTable(ctx context.Context, filter attendance.DayFilter) (export.Table, error) {
	day, err := s.attendance.GetDay(ctx, filter)
	if err != nil {
		return export.Table{}, err
	}

	table := export.Table{
		Title: fmt.Sprintf("Attendance Report - %s", day.Date),
		Sheet: "Attendance",
		Columns: []export.Column{
			{Header: "Employee", Width: 28},
			{Header: "Check-In", Width: 14},
			{Header: "Check-Out", Width: 14},
			{Header: "Late", Width: 10},
			{Header: "Early Leave", Width: 12},
			{Header: "Hours Worked", Width: 14},
			{Header: "Extra", Width: 10},
			{Header: "Status", Width: 18},
		},
	}

	for _, r := range day.Records {
		table.Rows = append(table.Rows, []string{
			r.Username,
			r.CheckInDisplay,
			r.CheckOutDisplay,
			view.YesNo(r.IsLate),
			view.YesNo(r.IsEarly),
			r.Duration,
			hoursCell(r.ExtraHours),
			r.StatusLabel,
		})
	}

	return table, nil
}

// EmployeeTable implements ExportService.
func (s *ExportServiceImpl) EmployeeTable(ctx context.Context, search string) (export.Table, error) {
	employees, err := s.employees.List(ctx, search)
	if err != nil {
		return export.Table{}, err
	}

	table := export.Table{
		Title: "Employee Directory",
		Sheet: "Employees",
		Columns: []export.Column{
			{Header: "Employee", Width: 28},
			{Header: "Employee ID", Width: 14},
			{Header: "Device ID", Width: 16},
			{Header: "Telephone", Width: 16},
			{Header: "Job Title", Width: 20},
			{Header: "Department", Width: 20},
			{Header: "Branch", Width: 16},
		},
	}

	for _, e := range employees {
		table.Rows = append(table.Rows, []string{
			e.Username,
			e.EmployeeID,
			e.DeviceID,
			e.Telephone,
			e.JobTitle,
			e.Department,
			e.Branch,
		})
	}

	return table, nil
}

// LeaveTable implements ExportService.
func (s *ExportServiceImpl) LeaveTable(ctx context.Context, filter leave.Filter) (export.Table, error) {
	requests, err := s.leaves.List(ctx, filter)
	if err != nil {
		return export.Table{}, err
	}

	table := export.Table{
		Title: "Leave Requests",
		Sheet: "Leave Requests",
		Columns: []export.Column{
			{Header: "Employee", Width: 28},
			{Header: "Start Date", Width: 14},
			{Header: "End Date", Width: 14},
			{Header: "Type", Width: 16},
			{Header: "Request Date", Width: 14},
			{Header: "Status", Width: 14},
		},
	}

	for _, r := range requests {
		table.Rows = append(table.Rows, []string{
			view.FallbackName(r.Employee.Username, ""),
			r.StartDate,
			r.EndDate,
			r.Type,
			r.RequestDate,
			r.Status,
		})
	}

	return table, nil
}

// ReportTable implements ExportService.
func (s *ExportServiceImpl) ReportTable(ctx context.Context, filter *report.RangeFilter) (export.Table, error) {
	result, err := s.reports.GetRange(ctx, filter)
	if err != nil {
		return export.Table{}, err
	}

	table := export.Table{
		Title: fmt.Sprintf("Attendance Report - %s", result.Username),
		Sheet: "Report",
		Summary: [][]string{
			{"Period", fmt.Sprintf("%s to %s", result.From, result.To)},
			{"Present", strconv.Itoa(result.Summary.Present)},
			{"Absent", strconv.Itoa(result.Summary.Absent)},
			{"On Leave", strconv.Itoa(result.Summary.OnLeave)},
			{"Early Leave", strconv.Itoa(result.Summary.Partial)},
			{"Total Records", strconv.Itoa(result.Summary.TotalRecords)},
		},
		Columns: []export.Column{
			{Header: "Date", Width: 14},
			{Header: "Status", Width: 18},
			{Header: "Check-In", Width: 14},
			{Header: "Check-Out", Width: 14},
			{Header: "Hours", Width: 12},
			{Header: "Extra", Width: 10},
		},
	}

	for _, r := range result.Records {
		table.Rows = append(table.Rows, []string{
			r.Date,
			r.StatusLabel,
			r.CheckInDisplay,
			r.CheckOutDisplay,
			r.Duration,
			hoursCell(r.ExtraHours),
		})
	}

	return table, nil
}
