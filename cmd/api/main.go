package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendo-app/attendo-backend-go/internal/config"
	appHTTP "github.com/attendo-app/attendo-backend-go/internal/handler/http"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/database"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/jwt"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/storage"
	"github.com/attendo-app/attendo-backend-go/internal/repository/postgresql"
	announcementService "github.com/attendo-app/attendo-backend-go/internal/service/announcement"
	attendanceService "github.com/attendo-app/attendo-backend-go/internal/service/attendance"
	authService "github.com/attendo-app/attendo-backend-go/internal/service/auth"
	employeeService "github.com/attendo-app/attendo-backend-go/internal/service/employee"
	exportService "github.com/attendo-app/attendo-backend-go/internal/service/export"
	holidayService "github.com/attendo-app/attendo-backend-go/internal/service/holiday"
	leaveService "github.com/attendo-app/attendo-backend-go/internal/service/leave"
	preferenceService "github.com/attendo-app/attendo-backend-go/internal/service/preference"
	provisioningService "github.com/attendo-app/attendo-backend-go/internal/service/provisioning"
	reportService "github.com/attendo-app/attendo-backend-go/internal/service/report"
	timetableService "github.com/attendo-app/attendo-backend-go/internal/service/timetable"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	timetableRepo := postgresql.NewTimetableRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	qrCodeRepo := postgresql.NewQRCodeRepository(db)
	wifiConfigRepo := postgresql.NewWifiConfigRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	authSvc := authService.NewAuthService(adminRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, reportRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	timetableSvc := timetableService.NewTimetableService(timetableRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)
	provisioningSvc := provisioningService.NewProvisioningService(qrCodeRepo, wifiConfigRepo, fileStorage)
	reportSvc := reportService.NewReportService(reportRepo, attendanceRepo, employeeRepo)
	preferenceSvc := preferenceService.NewPreferenceService(adminRepo)
	exportSvc := exportService.NewExportService(attendanceSvc, employeeSvc, leaveSvc, reportSvc)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc, exportSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, exportSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc, exportSvc),
		Timetable:    appHTTP.NewTimetableHandler(timetableSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Provisioning: appHTTP.NewProvisioningHandler(provisioningSvc),
		Report:       appHTTP.NewReportHandler(reportSvc, exportSvc),
		Preference:   appHTTP.NewPreferenceHandler(preferenceSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("Attendo backend listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
