package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/registro/attendance-backend-go/internal/config"
	appHTTP "github.com/registro/attendance-backend-go/internal/handler/http"
	"github.com/registro/attendance-backend-go/internal/pkg/database"
	"github.com/registro/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/registro/attendance-backend-go/internal/service/attendance"
	authService "github.com/registro/attendance-backend-go/internal/service/auth"
	employeeService "github.com/registro/attendance-backend-go/internal/service/employee"
	reportService "github.com/registro/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	if err := postgresql.Bootstrap(context.Background(), db); err != nil {
		log.Fatal("Error bootstrapping schema: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)

	recorderSvc := attendanceService.NewRecorderService(ledgerRepo, cfg.Clock())
	authSvc := authService.NewAuthService(employeeRepo, recorderSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	reportSvc := reportService.NewReportService(ledgerRepo, cfg.Export)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(recorderSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		authHandler,
		employeeHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
