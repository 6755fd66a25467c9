package main

import (
	"fmt"
	"net/http"

	"github.com/yamato-foods/backoffice-go/internal/config"
	appHTTP "github.com/yamato-foods/backoffice-go/internal/handler/http"
	"github.com/yamato-foods/backoffice-go/internal/pkg/cron"
	"github.com/yamato-foods/backoffice-go/internal/pkg/database"
	"github.com/yamato-foods/backoffice-go/internal/pkg/jwt"
	"github.com/yamato-foods/backoffice-go/internal/pkg/sse"
	"github.com/yamato-foods/backoffice-go/internal/repository/postgresql"
	authService "github.com/yamato-foods/backoffice-go/internal/service/auth"
	reportService "github.com/yamato-foods/backoffice-go/internal/service/report"
	staffService "github.com/yamato-foods/backoffice-go/internal/service/staff"
	timeclockService "github.com/yamato-foods/backoffice-go/internal/service/timeclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	loc := cfg.Location()
	hub := sse.NewHub()

	clockEventRepo := postgresql.NewClockEventRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	timeclockSvc := timeclockService.NewTimeclockService(db, clockEventRepo, hub, loc)
	reportSvc := reportService.NewReportService(db, clockEventRepo, staffRepo, loc)
	staffSvc := staffService.NewStaffService(db, staffRepo)
	authSvc := authService.NewAuthService(staffRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	timeclockHandler := appHTTP.NewTimeclockHandler(timeclockSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	sseHandler := appHTTP.NewSSEHandler(hub, JWTService)

	scheduler := cron.NewScheduler()
	dashboardJobs := cron.NewDashboardJobs(reportSvc, hub, loc, cfg.App.DashboardRefresh)
	dashboardJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		timeclockHandler,
		staffHandler,
		reportHandler,
		sseHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
