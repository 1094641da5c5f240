package response

import (
	"errors"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/domain/announcement"
	"github.com/attendo-app/attendo-backend-go/internal/domain/attendance"
	"github.com/attendo-app/attendo-backend-go/internal/domain/auth"
	"github.com/attendo-app/attendo-backend-go/internal/domain/employee"
	"github.com/attendo-app/attendo-backend-go/internal/domain/holiday"
	"github.com/attendo-app/attendo-backend-go/internal/domain/leave"
	"github.com/attendo-app/attendo-backend-go/internal/domain/provisioning"
	"github.com/attendo-app/attendo-backend-go/internal/domain/timetable"
	"github.com/attendo-app/attendo-backend-go/internal/domain/user"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/export"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrAdminNotFound):
		NotFound(w, "Admin account not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrDeviceIDExists):
		Conflict(w, "Device ID already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Timetable domain errors
	case errors.Is(err, timetable.ErrTimetableNotFound):
		NotFound(w, "Timetable not found")
	case errors.Is(err, timetable.ErrTimetableInUse):
		Conflict(w, "Timetable still has employees assigned")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Provisioning domain errors
	case errors.Is(err, provisioning.ErrQRCodeNotFound):
		NotFound(w, "QR code not found")
	case errors.Is(err, provisioning.ErrWifiConfigNotFound):
		NotFound(w, "Wi-Fi config not found")
	case errors.Is(err, provisioning.ErrSSIDExists):
		Conflict(w, "SSID already registered")

	// Export errors
	case errors.Is(err, export.ErrUnknownFormat):
		BadRequest(w, "format must be one of: pdf, xlsx, csv", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
