// Command import loads a registry workbook from the command line, without
// going through the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"clinic-registry/internal/importer"
	"clinic-registry/internal/repositories"
	"clinic-registry/pkg/config"
	"clinic-registry/pkg/database/postgresql"
	applogger "clinic-registry/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	filePath := flag.String("file", "", "path to the .xlsx workbook to import")
	reset := flag.Bool("reset", false, "drop and recreate the schema before importing")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := applogger.NewLogger()
	cfg := config.New()

	if *reset {
		logger.Info("resetting schema")
		if err := postgresql.ResetSchema(cfg.Postgres.DSN); err != nil {
			logger.Fatal("schema reset failed", zap.Error(err))
		}
	} else if err := postgresql.MigrateUp(cfg.Postgres.DSN); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	store := importer.NewPgStore(
		repositories.NewTxManager(dbConn),
		repositories.NewSpecialtyRepository(dbConn),
		repositories.NewPlanRepository(dbConn),
		repositories.NewResponsibleRepository(dbConn),
		repositories.NewDoctorRepository(dbConn),
		repositories.NewSurgeryRepository(dbConn),
	)
	orchestrator := importer.NewOrchestrator(store, logger)

	summary, err := orchestrator.Run(context.Background(), *filePath)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	fmt.Printf("run %s\n", summary.RunID)
	for _, sheet := range importer.SheetOrder {
		s, ok := summary.Sheets[sheet]
		if !ok {
			continue
		}
		if s.Error != "" {
			fmt.Printf("  %-14s inserted=%d skipped=%d error=%s\n", sheet, s.Inserted, s.Skipped, s.Error)
			continue
		}
		fmt.Printf("  %-14s inserted=%d skipped=%d\n", sheet, s.Inserted, s.Skipped)
	}
}
