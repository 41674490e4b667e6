package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/msnglobalit/attendance-backend-go/internal/config"
	attendanceDomain "github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
	rosterDomain "github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
	appHTTP "github.com/msnglobalit/attendance-backend-go/internal/handler/http"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/cron"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/database"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/jwt"
	"github.com/msnglobalit/attendance-backend-go/internal/pkg/storage"
	"github.com/msnglobalit/attendance-backend-go/internal/repository/ledgerfile"
	"github.com/msnglobalit/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/msnglobalit/attendance-backend-go/internal/service/attendance"
	authService "github.com/msnglobalit/attendance-backend-go/internal/service/auth"
	intakeService "github.com/msnglobalit/attendance-backend-go/internal/service/intake"
	reportService "github.com/msnglobalit/attendance-backend-go/internal/service/report"
	rosterService "github.com/msnglobalit/attendance-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		ledgerRepo attendanceDomain.LedgerRepository
		rosterRepo rosterDomain.RosterRepository
	)
	switch cfg.Store.Type {
	case "file":
		ledgerRepo, err = ledgerfile.NewLedgerRepository(cfg.Store.DataDir)
		if err != nil {
			log.Fatal("Failed to initialize ledger store:", err)
		}
		rosterRepo = ledgerfile.NewRosterRepository(cfg.Store.RosterFile)
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		ctx := context.Background()
		if err := postgresql.EnsureLedgerSchema(ctx, db); err != nil {
			log.Fatal("Failed to ensure ledger schema:", err)
		}
		if err := postgresql.EnsureRosterSchema(ctx, db); err != nil {
			log.Fatal("Failed to ensure roster schema:", err)
		}
		ledgerRepo = postgresql.NewLedgerRepository(db)
		rosterRepo = postgresql.NewRosterRepository(db)
	default:
		log.Fatal("Unsupported store type: ", cfg.Store.Type)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Store.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	classifier, err := attendanceService.NewClassifier(cfg.Attendance.OfficeStart, cfg.Attendance.GracePeriod)
	if err != nil {
		log.Fatal("Invalid attendance policy:", err)
	}

	exchangeRepo := ledgerfile.NewExchangeRepository(cfg.Intake.ExchangeFile)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	ledgerSvc := attendanceService.NewLedgerService(ledgerRepo, ledgerfile.NewArtifactWriter(fileStorage), classifier, nil)
	intakeSvc := intakeService.NewIntakeService(exchangeRepo, ledgerSvc, rosterRepo, cfg.Intake.FreshnessWindow, nil)
	reportSvc := reportService.NewReportService(ledgerRepo, rosterRepo, nil)
	rosterSvc := rosterService.NewRosterService(rosterRepo, fileStorage)
	authSvc := authService.NewAuthService(cfg.Store.CredentialsFile, jwtSvc)

	scheduler := cron.NewScheduler()
	cron.NewIntakeJobs(intakeSvc, cfg.Intake.PollInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtSvc,
		cfg.App.FrontendURL,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewAttendanceHandler(ledgerSvc),
		appHTTP.NewIntakeHandler(intakeSvc),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewRosterHandler(rosterSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
