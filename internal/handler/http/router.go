package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/attendo-app/attendo-backend-go/internal/config"
	"github.com/attendo-app/attendo-backend-go/internal/handler/http/middleware"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Timetable    TimetableHandler
	Holiday      HolidayHandler
	Announcement AnnouncementHandler
	Provisioning ProvisioningHandler
	Report       ReportHandler
	Preference   PreferenceHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendo-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded assets (employee photos, QR images)
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login-admin", h.Auth.LoginAdmin)
			r.Post("/register-admin", h.Auth.RegisterAdmin)
			r.Post("/request-reset", h.Auth.RequestReset)
			// Legacy alias kept for older clients
			r.Post("/forgot-password", h.Auth.RequestReset)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", h.Auth.Me)
			})
		})

		// Everything below requires an authenticated admin
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/export", h.Employee.Export)
				r.Get("/{id}", h.Employee.Get)
				r.Post("/add", h.Employee.Create)
				r.Put("/edit/{id}", h.Employee.Update)
				r.Delete("/delete/{id}", h.Employee.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/date", h.Attendance.GetByDate)
				r.Get("/overall", h.Attendance.Overall)
				r.Get("/weekly", h.Attendance.Weekly)
				r.Get("/export", h.Attendance.Export)
				r.Put("/update/{id}", h.Attendance.Update)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/all", h.Leave.List)
				r.Get("/pending", h.Leave.ListPending)
				r.Get("/export", h.Leave.Export)
				r.Put("/update/{id}", h.Leave.UpdateStatus)
				r.Patch("/{id}/mark-read", h.Leave.MarkRead)
			})

			r.Route("/time-tables", func(r chi.Router) {
				r.Get("/all", h.Timetable.List)
				r.Post("/create", h.Timetable.Create)
				r.Put("/update/{id}", h.Timetable.Update)
				r.Delete("/delete/{id}", h.Timetable.Delete)
				r.Get("/{id}/employees", h.Timetable.Employees)
			})

			r.Route("/holiday", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Post("/create", h.Holiday.Create)
				r.Put("/update/{id}", h.Holiday.Update)
				r.Delete("/delete/{id}", h.Holiday.Delete)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/all", h.Announcement.List)
				r.Post("/create", h.Announcement.Create)
				r.Put("/edit/{id}", h.Announcement.Update)
				r.Delete("/delete/{id}", h.Announcement.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", h.Report.Summary)
				r.Get("/range/{employeeId}", h.Report.Range)
				r.Get("/range/{employeeId}/export", h.Report.Export)
			})

			r.Route("/qr-codes", func(r chi.Router) {
				r.Get("/all", h.Provisioning.ListQRCodes)
				r.Post("/generate", h.Provisioning.GenerateQRCode)
				r.Delete("/delete/{id}", h.Provisioning.DeleteQRCode)
			})

			r.Route("/wifi-config", func(r chi.Router) {
				r.Get("/all", h.Provisioning.ListWifiConfigs)
				r.Post("/add", h.Provisioning.AddWifiConfig)
				r.Delete("/delete", h.Provisioning.DeleteWifiConfig)
			})

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/theme", h.Preference.GetTheme)
				r.Patch("/theme", h.Preference.ToggleTheme)
			})
		})
	})

	return r
}
