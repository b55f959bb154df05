package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/config"
	appHTTP "github.com/attendly/attendance-backend-go/internal/handler/http"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/attendly/attendance-backend-go/internal/pkg/storage"
	"github.com/attendly/attendance-backend-go/internal/repository/csvlog"
	"github.com/attendly/attendance-backend-go/internal/repository/xlsxroster"
	attendanceService "github.com/attendly/attendance-backend-go/internal/service/attendance"
	"github.com/attendly/attendance-backend-go/internal/service/export"
	reportService "github.com/attendly/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// The roster is the authoritative identity source; without it no
	// request can be validated, so a missing file halts startup.
	rosterRepo, err := xlsxroster.New(cfg.Files.RosterFile)
	if err != nil {
		log.Fatal("Failed to load employee roster: ", err)
	}

	reportingClock, err := clock.New(cfg.Report.Timezone)
	if err != nil {
		log.Fatal("Failed to load reporting timezone: ", err)
	}

	exportStorage, err := storage.NewLocalStorage(cfg.Files.ExportDir)
	if err != nil {
		log.Fatal("Failed to initialize export storage: ", err)
	}

	eventLog := csvlog.New(cfg.Files.LogFile)

	attendanceSvc := attendanceService.NewAttendanceService(rosterRepo, eventLog, reportingClock)
	reportSvc := reportService.NewReportService(eventLog, reportingClock)
	exportSvc := export.NewExportService(exportStorage)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, exportSvc)

	router := appHTTP.NewRouter(
		cfg.Admin.Secret,
		attendanceHandler,
		reportHandler,
	)

	fmt.Printf("Loaded roster with %d employees from %s\n", rosterRepo.Count(), cfg.Files.RosterFile)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
