package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/yamato-foods/backoffice-go/internal/config"
	"github.com/yamato-foods/backoffice-go/internal/handler/http/middleware"
	"github.com/yamato-foods/backoffice-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	timeclockHandler TimeclockHandler,
	staffHandler StaffHandler,
	reportHandler ReportHandler,
	sseHandler SSEHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "yamato-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", authHandler.Login)

		// Token arrives as a query parameter; the handler validates it itself.
		r.Get("/events/stream", sseHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", authHandler.Logout)
				r.Post("/sse-token", authHandler.SSEToken)
			})

			r.Route("/timeclock", func(r chi.Router) {
				r.Post("/punch", timeclockHandler.Punch)
				r.Get("/staff/{staffID}/events", timeclockHandler.ListEvents)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/events/{eventID}/correct", timeclockHandler.Correct)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/dashboard", reportHandler.Dashboard)
				r.Get("/staff/{staffID}/ledger", reportHandler.MonthlyLedger)
				r.Get("/staff/{staffID}/payslip", reportHandler.Payslip)
				r.Get("/staff/{staffID}/attendance", reportHandler.AttendanceDetail)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/analytics", reportHandler.Analytics)
					r.Get("/export/payroll", reportHandler.ExportPayrollCSV)
				})
			})

			// Admin only
			r.Route("/staff", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", staffHandler.List)
				r.Get("/{staffID}/wage-profile", staffHandler.GetWageProfile)
				r.Put("/{staffID}/wage-profile", staffHandler.UpdateWageProfile)
			})
		})
	})
	return r
}
