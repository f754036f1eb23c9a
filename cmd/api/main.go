package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sistema-turnos/turnos-backend-go/internal/config"
	appHTTP "github.com/sistema-turnos/turnos-backend-go/internal/handler/http"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/database"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/email"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/geoip"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/jwt"
	"github.com/sistema-turnos/turnos-backend-go/internal/pkg/logger"
	"github.com/sistema-turnos/turnos-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/sistema-turnos/turnos-backend-go/internal/service/auth"
	reportService "github.com/sistema-turnos/turnos-backend-go/internal/service/report"
	shiftService "github.com/sistema-turnos/turnos-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger.Setup(cfg.Log)

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftRepo := postgresql.NewShiftRecordRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	adminRepo := postgresql.NewAdministratorRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	emailService := email.NewEmailService(cfg.SMTP)

	var geoClient *geoip.Client
	if cfg.GeoIP.Enabled {
		geoClient = geoip.NewClient(cfg.GeoIP.BaseURL)
	}

	authService := serviceAuth.NewAuthService(adminRepo, employeeRepo, siteRepo, JWTService, geoClient, cfg.IsDevelopment())
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, location)
	reportSvc := reportService.NewReportService(shiftSvc, emailService)

	authHandler := appHTTP.NewAuthHandler(authService, JWTService)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	siteHandler := appHTTP.NewSiteHandler(siteRepo)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
		},
		JWTService,
		authHandler,
		shiftHandler,
		siteHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
